package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ttv9934/device-management-app/config"
	"github.com/ttv9934/device-management-app/db"
	"github.com/ttv9934/device-management-app/model"

	_ "github.com/ttv9934/device-management-app/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title			Device Management API
// @version		1.0
// @description	REST API for the device inventory: CRUD, xlsx import/export, and statistics
// @BasePath	/api
type Web struct {
	Router *gin.Engine
	DB     *db.DB
	Logger *zap.Logger
	Config *config.Config
}

func New(connection *db.DB, cfg *config.Config, logger *zap.Logger) *Web {
	gin.SetMode(cfg.GinMode)

	w := &Web{
		Router: gin.New(),
		DB:     connection,
		Logger: logger,
		Config: cfg,
	}

	w.Router.Use(gin.Recovery())
	w.Router.Use(w.requestLogger())
	w.Router.Use(cors.Default())
	w.setupRoutes()

	return w
}

func (w *Web) setupRoutes() {
	api := w.Router.Group("/api/devices")
	{
		api.GET("", w.listDevices)
		api.POST("", w.createDevice)

		// Bulk xlsx import/export.
		api.POST("/import", w.importDevices)
		api.GET("/export", w.exportDevices)

		// Aggregate statistics.
		api.GET("/stats", w.deviceStats)

		api.GET("/:id", w.getDeviceByID)
		api.PUT("/:id", w.updateDevice)
		api.DELETE("/:id", w.deleteDevice)
	}

	w.Router.GET("/healthz", w.health)
	w.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Anything else is the browser UI: serve the file if it exists,
	// otherwise fall back to index.html for client-side routing.
	w.Router.NoRoute(w.serveStatic)
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains
// in-flight requests for up to ten seconds.
func (w *Web) Serve() error {
	server := &http.Server{
		Addr:    ":" + w.Config.Port,
		Handler: w.Router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.Logger.Fatal("server error", zap.Error(err))
		}
	}()
	w.Logger.Info("server started", zap.String("port", w.Config.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	w.Logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// requestLogger tags every request with an id and emits one structured
// line after the handler runs.
func (w *Web) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		ctx.Writer.Header().Set("X-Request-ID", requestID)

		ctx.Next()

		w.Logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (w *Web) serveStatic(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet || strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
		ctx.JSON(http.StatusNotFound, model.RestError{Error: "not found"})
		return
	}

	requested := filepath.Join(w.Config.StaticDir, filepath.Clean("/"+ctx.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		ctx.File(requested)
		return
	}

	index := filepath.Join(w.Config.StaticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		ctx.File(index)
		return
	}

	ctx.JSON(http.StatusNotFound, model.RestError{Error: "not found"})
}

// health godoc
// @Summary      Health check
// @Description  Reports process and database health.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  model.RestError
// @Router       /healthz [get]
func (w *Web) health(ctx *gin.Context) {
	if err := w.DB.Ping(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, model.RestError{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
