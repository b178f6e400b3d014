package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ttv9934/device-management-app/excel"
	"github.com/ttv9934/device-management-app/model"
	"github.com/ttv9934/device-management-app/validation"
)

// importDevices godoc
// @Summary      Import devices from xlsx
// @Description  Reads the uploaded workbook and inserts every row as a device. The whole batch is validated first: duplicates within the file, future dates, then conflicts with stored records. Import is all-or-nothing.
// @Tags         devices
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "xlsx workbook"
// @Success      200   {object}  model.RestMessage
// @Failure      400   {object}  model.RestError
// @Failure      500   {object}  model.RestError
// @Router       /devices/import [post]
func (w *Web) importDevices(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: "No file uploaded"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: err.Error()})
		return
	}
	defer file.Close()

	devices, err := excel.ReadDevices(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.RestError{Error: err.Error()})
		return
	}

	if len(devices) > 0 {
		// Step 1: duplicates within the batch itself, before any store
		// access.
		if failures := validation.BatchDuplicates(devices); len(failures) > 0 {
			ctx.JSON(http.StatusBadRequest, model.RestError{Error: failures.Join()})
			return
		}

		// Step 2: future dates anywhere in the batch.
		if failure := validation.BatchFutureDates(devices, time.Now()); failure != nil {
			ctx.JSON(http.StatusBadRequest, model.RestError{Error: failure.Reason})
			return
		}

		// Step 3: membership test of the whole batch against the store
		// in one query.
		names := make([]string, 0, len(devices))
		ips := make([]string, 0, len(devices))
		for _, d := range devices {
			names = append(names, d.Name)
			ips = append(ips, d.IP)
		}
		existing, err := w.DB.FindExisting(names, ips)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
			return
		}
		if failures := validation.BatchConflicts(existing); len(failures) > 0 {
			ctx.JSON(http.StatusBadRequest, model.RestError{Error: failures.Join()})
			return
		}

		if err := w.DB.CreateDevices(devices); err != nil {
			ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, model.RestMessage{
		Message: fmt.Sprintf("%d devices imported successfully", len(devices)),
	})
}

// exportDevices godoc
// @Summary      Export devices as xlsx
// @Description  Streams every device as a workbook with the fixed 9-column layout.
// @Tags         devices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  model.RestError
// @Router       /devices/export [get]
func (w *Web) exportDevices(ctx *gin.Context) {
	devices, err := w.DB.GetAllDevices()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.Header("Content-Type", excel.ContentType)
	ctx.Header("Content-Disposition", "attachment; filename="+excel.FileName)
	ctx.Status(http.StatusOK)

	if err := excel.WriteDevices(ctx.Writer, devices); err != nil {
		// Headers are already on the wire; all we can do is log.
		w.Logger.Error("failed to stream export", zap.Error(err))
	}
}
