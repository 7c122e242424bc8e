package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"energy_oracle/internal/models"
	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from'; expected an unsigned integer event id"
	errLimitInvalid = "invalid 'limit'; expected a positive integer"
	errIDInvalid    = "invalid event id; expected an unsigned integer"
)

// @Summary      List events
// @Description  Journal page in id order. Ids are dense from 0 and never reused.
// @Tags         events
// @Produce      json
// @Param        from   query  int     false  "First event id"  example(0)
// @Param        type   query  string  false  "Event type"  Enums(sensor-registered,sensor-deactivated,data-submitted)
// @Param        limit  query  int     false  "Page size (default 100, max 1000)"
// @Success      200  {object}  map[string]interface{}  "count, events"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/events [get]
// @Security     BearerAuth
func (h *Handler) listEvents(c *gin.Context) {
	var (
		filter service.EventFilter
		err    error
	)
	if qs := c.Query("from"); qs != "" {
		filter.From, err = strconv.ParseUint(qs, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("limit"); qs != "" {
		filter.Limit, err = strconv.Atoi(qs)
		if err != nil || filter.Limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return
		}
	}
	filter.Type = models.EventType(strings.TrimSpace(c.Query("type")))

	events := h.services.Events(filter)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// @Summary      Get event
// @Description  Lookup by id; an id past the journal end returns the zero record.
// @Tags         events
// @Produce      json
// @Param        id  path  int  true  "Event id"
// @Success      200  {object}  models.Event
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/events/{id} [get]
// @Security     BearerAuth
func (h *Handler) getEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errIDInvalid})
		return
	}
	c.JSON(http.StatusOK, h.services.Event(id))
}
