package handlers

import (
	"energy_oracle/internal/logger"
	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Status/journal stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.identityMiddleware)
	{
		h.registerSensorRoutes(api)
		h.registerReadingRoutes(api)
		h.registerAssetRoutes(api)
		h.registerEventRoutes(api)
		h.registerAdminRoutes(api)
		h.registerExportRoutes(api)
		api.GET("/oracle", h.getOracleStatus)
	}
}

func (h *Handler) registerSensorRoutes(api *gin.RouterGroup) {
	sensors := api.Group("/sensors")
	{
		sensors.POST("", h.registerSensor)
		sensors.GET("", h.listSensors)
		sensors.GET("/:id", h.getSensor)
		sensors.POST("/:id/deactivate", h.deactivateSensor)
	}
}

func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	readings := api.Group("/readings")
	{
		// Body example: {"sensor_id":"sensor-1","asset_id":"plant-1","energy_output":120,"timestamp":1700000000}
		readings.POST("", h.submitReading)
		readings.GET("/:sensorId", h.getReading)
	}
}

func (h *Handler) registerAssetRoutes(api *gin.RouterGroup) {
	assets := api.Group("/assets")
	{
		assets.GET("", h.listAssetMetrics)
		assets.GET("/:id/metrics", h.getAssetMetrics)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
	}
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	{
		admin.POST("/pause", h.setPaused)
		admin.POST("/operator", h.setOperator)
		admin.POST("/transfer", h.transferAdmin)
		admin.POST("/height", h.setHeight)
	}
}

func (h *Handler) registerExportRoutes(api *gin.RouterGroup) {
	exports := api.Group("/exports")
	{
		exports.GET("/metrics.xlsx", h.exportMetricsXLSX)
		exports.GET("/report.pdf", h.exportReportPDF)
	}
}
