package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Oracle status
// @Description  Control surface and counts, stamped with the current height.
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.OracleStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oracle [get]
// @Security     BearerAuth
func (h *Handler) getOracleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Status())
}
