package handlers

import (
	"net/http"
	"strconv"

	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReadingRequest is the ingestion payload.
type SubmitReadingRequest struct {
	// Sensor that produced the reading
	SensorID string `json:"sensor_id" binding:"required" example:"sensor-1"`
	// Asset the reading is attributed to
	AssetID string `json:"asset_id" binding:"required" example:"plant-1"`
	// Produced energy; must be positive
	EnergyOutput uint64 `json:"energy_output" example:"120"`
	// Reading timestamp in logical height units
	Timestamp uint64 `json:"timestamp" example:"1700000000"`
}

// @Summary      Submit reading
// @Description  Oracle operator only. Readings older than one hour of height are rejected.
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body   SubmitReadingRequest  true  "Reading payload"
// @Success      200   {object}  map[string]interface{}  "status, event, metrics"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/readings [post]
// @Security     BearerAuth
func (h *Handler) submitReading(c *gin.Context) {
	var req SubmitReadingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ev, err := h.services.SubmitReading(c.Request.Context(), callerIdentity(c), service.SubmitReadingParams{
		SensorID:     req.SensorID,
		AssetID:      req.AssetID,
		EnergyOutput: req.EnergyOutput,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		h.writeLedgerError(c, err, "reading_submit_failed",
			"sensor_id", req.SensorID, "asset_id", req.AssetID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  statusAdmitted,
		"event":   ev,
		"metrics": h.services.AssetMetrics(req.AssetID),
	})
}

// @Summary      Get reading
// @Description  Point lookup by (sensor, timestamp); an unknown pair returns the zero record.
// @Tags         readings
// @Produce      json
// @Param        sensorId  path   string  true  "Sensor id"
// @Param        ts        query  int     true  "Reading timestamp"
// @Success      200  {object}  models.SensorReading
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/readings/{sensorId} [get]
// @Security     BearerAuth
func (h *Handler) getReading(c *gin.Context) {
	ts, err := strconv.ParseUint(c.Query("ts"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'ts' must be an unsigned integer"})
		return
	}
	c.JSON(http.StatusOK, h.services.Reading(c.Param("sensorId"), ts))
}
