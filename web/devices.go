package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ttv9934/device-management-app/db"
	"github.com/ttv9934/device-management-app/model"
	"github.com/ttv9934/device-management-app/validation"
)

// listDevices godoc
// @Summary      List devices
// @Description  Paginated device listing. search matches name or ip (substring), type is an exact match, model and factory are substring filters; all active filters combine with AND.
// @Tags         devices
// @Produce      json
// @Param        page     query     int     false  "Page number (default: 1)"
// @Param        limit    query     int     false  "Page size (default: 15)"
// @Param        search   query     string  false  "Substring match on name or ip"
// @Param        type     query     string  false  "Exact match on type"
// @Param        model    query     string  false  "Substring match on model"
// @Param        factory  query     string  false  "Substring match on factory"
// @Success      200      {object}  model.DeviceList
// @Failure      500      {object}  model.RestError
// @Router       /devices [get]
func (w *Web) listDevices(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if err != nil || limit < 1 {
		limit = 15
	}

	devices, total, err := w.DB.GetDevices(db.ListFilter{
		Page:    page,
		Limit:   limit,
		Search:  ctx.Query("search"),
		Type:    ctx.Query("type"),
		Model:   ctx.Query("model"),
		Factory: ctx.Query("factory"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	ctx.JSON(http.StatusOK, model.DeviceList{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		Devices:     devices,
	})
}

// createDevice godoc
// @Summary      Create a device
// @Description  Creates a device after checking name/ip uniqueness and that the device date is not in the future.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        device  body      model.CreateDevice  true  "Device to create"
// @Success      201     {object}  database.Device
// @Failure      400     {object}  model.RestError
// @Failure      500     {object}  model.RestError
// @Router       /devices [post]
func (w *Web) createDevice(ctx *gin.Context) {
	var payload model.CreateDevice
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: err.Error()})
		return
	}

	if !payload.HasRequiredFields() {
		ctx.JSON(http.StatusBadRequest, model.RestError{
			Error: "name, ip, department, model, year, type, status, and factory are required fields",
		})
		return
	}

	// Conflict check first, then the date check; the first failure
	// short-circuits.
	match, err := w.DB.FindConflict(payload.Name, payload.IP)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}
	if failures := validation.ConflictOnCreate(match, payload.Name, payload.IP); len(failures) > 0 {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: failures.Join()})
		return
	}

	if failure := validation.FutureDate(payload.Year, payload.Month, payload.Day, time.Now()); failure != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: failure.Reason})
		return
	}

	device := payload.TranslateToDB()
	if err := w.DB.CreateDevice(&device); err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, device)
}

// getDeviceByID godoc
// @Summary      Get a device
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device ID"
// @Success      200  {object}  database.Device
// @Failure      404  {object}  model.RestError
// @Failure      500  {object}  model.RestError
// @Router       /devices/{id} [get]
func (w *Web) getDeviceByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	device, err := w.DB.GetDeviceByID(id)
	if errors.Is(err, db.ErrDeviceNotFound) {
		ctx.JSON(http.StatusNotFound, model.RestError{Error: "Device not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, device)
}

// updateDevice godoc
// @Summary      Update a device
// @Description  Partial update; only fields present in the body change. Changed name/ip values are checked for conflicts against every other record.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true  "Device ID"
// @Param        device  body      model.UpdateDevice  true  "Fields to update"
// @Success      200     {object}  database.Device
// @Failure      400     {object}  model.RestError
// @Failure      404     {object}  model.RestError
// @Failure      500     {object}  model.RestError
// @Router       /devices/{id} [put]
func (w *Web) updateDevice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	device, err := w.DB.GetDeviceByID(id)
	if errors.Is(err, db.ErrDeviceNotFound) {
		ctx.JSON(http.StatusNotFound, model.RestError{Error: "Device not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	var payload model.UpdateDevice
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: err.Error()})
		return
	}

	// Only fields that are present and actually differ from the stored
	// value trigger the conflict lookup.
	changedName, changedIP := "", ""
	if payload.Name != nil && *payload.Name != device.Name {
		changedName = *payload.Name
	}
	if payload.IP != nil && *payload.IP != device.IP {
		changedIP = *payload.IP
	}
	if changedName != "" || changedIP != "" {
		match, err := w.DB.FindConflictExcluding(device.ID, changedName, changedIP)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
			return
		}
		if failures := validation.ConflictOnUpdate(match, changedName, changedIP); len(failures) > 0 {
			ctx.JSON(http.StatusBadRequest, model.RestError{Error: failures.Join()})
			return
		}
	}

	if payload.Year != nil {
		month, day := 0, 0
		if payload.Month != nil {
			month = *payload.Month
		}
		if payload.Day != nil {
			day = *payload.Day
		}
		if failure := validation.FutureDate(*payload.Year, month, day, time.Now()); failure != nil {
			ctx.JSON(http.StatusBadRequest, model.RestError{Error: failure.Reason})
			return
		}
	}

	payload.ApplyTo(&device)
	if err := w.DB.UpdateDevice(device); err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, device)
}

// deleteDevice godoc
// @Summary      Delete a device
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device ID"
// @Success      200  {object}  model.RestMessage
// @Failure      404  {object}  model.RestError
// @Failure      500  {object}  model.RestError
// @Router       /devices/{id} [delete]
func (w *Web) deleteDevice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	err := w.DB.DeleteDevice(id)
	if errors.Is(err, db.ErrDeviceNotFound) {
		ctx.JSON(http.StatusNotFound, model.RestError{Error: "Device not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, model.RestMessage{Message: "Device deleted successfully"})
}

// parseID reads the :id path parameter. A non-numeric id can never
// match a record, so it reports the same 404 as a missing one.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, model.RestError{Error: "Device not found"})
		return 0, false
	}
	return uint(id), true
}
