package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ttv9934/device-management-app/model"
)

// deviceStats godoc
// @Summary      Device statistics
// @Description  Full-table aggregation: one row per (factory, type) pair with count and newest/oldest year, plus one row per factory with its total count.
// @Tags         devices
// @Produce      json
// @Success      200  {object}  model.DeviceStats
// @Failure      500  {object}  model.RestError
// @Router       /devices/stats [get]
func (w *Web) deviceStats(ctx *gin.Context) {
	byType, err := w.DB.StatsByTypeAndFactory()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}
	byFactory, err := w.DB.StatsByFactory()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, model.RestError{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, model.DeviceStats{
		ByType:    byType,
		ByFactory: byFactory,
	})
}
