package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Get asset metrics
// @Description  Lifetime aggregate for one asset; an untracked id returns the zero record.
// @Tags         assets
// @Produce      json
// @Param        id  path  string  true  "Asset id"
// @Success      200  {object}  models.AssetMetrics
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/assets/{id}/metrics [get]
// @Security     BearerAuth
func (h *Handler) getAssetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.AssetMetrics(c.Param("id")))
}

// @Summary      List asset metrics
// @Tags         assets
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, assets"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/assets [get]
// @Security     BearerAuth
func (h *Handler) listAssetMetrics(c *gin.Context) {
	assets := h.services.AssetMetricsList()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(assets),
		"assets": assets,
	})
}
