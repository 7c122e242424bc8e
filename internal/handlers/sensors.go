package handlers

import (
	"net/http"

	"energy_oracle/internal/models"
	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusRegistered  = "registered"
	statusDeactivated = "deactivated"
	statusAdmitted    = "admitted"
)

// RegisterSensorRequest is the registration payload.
type RegisterSensorRequest struct {
	// Unique sensor identifier
	SensorID string `json:"sensor_id" binding:"required" example:"sensor-1"`
	// Identity of the sensor owner
	Owner string `json:"owner" binding:"required" example:"carol"`
	// Energy type. Allowed: solar, wind
	EnergyType string `json:"energy_type" binding:"required" example:"solar"`
}

// @Summary      Register sensor
// @Description  Admin only. Journals a sensor-registered event.
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body   RegisterSensorRequest  true  "Sensor payload"
// @Success      200   {object}  map[string]interface{}  "status, event, sensor"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Router       /api/v1/sensors [post]
// @Security     BearerAuth
func (h *Handler) registerSensor(c *gin.Context) {
	var req RegisterSensorRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ev, err := h.services.RegisterSensor(c.Request.Context(), callerIdentity(c), service.RegisterSensorParams{
		SensorID:   req.SensorID,
		Owner:      models.Identity(req.Owner),
		EnergyType: models.EnergyType(req.EnergyType),
	})
	if err != nil {
		h.writeLedgerError(c, err, "sensor_register_failed", "sensor_id", req.SensorID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusRegistered,
		"event":  ev,
		"sensor": h.services.Sensor(req.SensorID),
	})
}

// @Summary      Deactivate sensor
// @Description  Admin only. History and aggregates stay in place.
// @Tags         sensors
// @Produce      json
// @Param        id  path  string  true  "Sensor id"
// @Success      200  {object}  map[string]interface{}  "status, event, sensor"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/v1/sensors/{id}/deactivate [post]
// @Security     BearerAuth
func (h *Handler) deactivateSensor(c *gin.Context) {
	sensorID := c.Param("id")

	ev, err := h.services.DeactivateSensor(c.Request.Context(), callerIdentity(c), sensorID)
	if err != nil {
		h.writeLedgerError(c, err, "sensor_deactivate_failed", "sensor_id", sensorID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusDeactivated,
		"event":  ev,
		"sensor": h.services.Sensor(sensorID),
	})
}

// @Summary      Get sensor
// @Description  Lookups never fail; an unknown id returns the zero record.
// @Tags         sensors
// @Produce      json
// @Param        id  path  string  true  "Sensor id"
// @Success      200  {object}  models.Sensor
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/sensors/{id} [get]
// @Security     BearerAuth
func (h *Handler) getSensor(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Sensor(c.Param("id")))
}

// @Summary      List sensors
// @Tags         sensors
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, sensors"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/sensors [get]
// @Security     BearerAuth
func (h *Handler) listSensors(c *gin.Context) {
	sensors := h.services.Sensors()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(sensors),
		"sensors": sensors,
	})
}
