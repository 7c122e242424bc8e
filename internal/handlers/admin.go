package handlers

import (
	"net/http"

	"energy_oracle/internal/models"

	"github.com/gin-gonic/gin"
)

// PauseRequest flips the ingestion gate.
type PauseRequest struct {
	Paused bool `json:"paused"`
}

// OperatorRequest hands the submission role over.
type OperatorRequest struct {
	Operator string `json:"operator" binding:"required" example:"bob"`
}

// TransferRequest hands the admin role over.
type TransferRequest struct {
	Admin string `json:"admin" binding:"required" example:"dana"`
}

// HeightRequest pushes the manual clock forward.
type HeightRequest struct {
	Height uint64 `json:"height" example:"1700000000"`
}

// @Summary      Set pause switch
// @Description  Admin only. While paused every submission is rejected.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body   PauseRequest  true  "Pause payload"
// @Success      200   {object}  map[string]interface{}  "paused"
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Router       /api/v1/admin/pause [post]
// @Security     BearerAuth
func (h *Handler) setPaused(c *gin.Context) {
	var req PauseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	paused, err := h.services.SetPaused(c.Request.Context(), callerIdentity(c), req.Paused)
	if err != nil {
		h.writeLedgerError(c, err, "admin_set_paused_failed", "paused", req.Paused)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": paused})
}

// @Summary      Set oracle operator
// @Description  Admin only. The previous operator loses the role in the same step.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body   OperatorRequest  true  "Operator payload"
// @Success      200   {object}  map[string]string  "operator"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Router       /api/v1/admin/operator [post]
// @Security     BearerAuth
func (h *Handler) setOperator(c *gin.Context) {
	var req OperatorRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.SetOperator(c.Request.Context(), callerIdentity(c), models.Identity(req.Operator)); err != nil {
		h.writeLedgerError(c, err, "admin_set_operator_failed", "operator", req.Operator)
		return
	}
	c.JSON(http.StatusOK, gin.H{"operator": req.Operator})
}

// @Summary      Transfer admin role
// @Description  Admin only. The caller loses the role in the same step.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body   TransferRequest  true  "Transfer payload"
// @Success      200   {object}  map[string]string  "admin"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Router       /api/v1/admin/transfer [post]
// @Security     BearerAuth
func (h *Handler) transferAdmin(c *gin.Context) {
	var req TransferRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.TransferAdmin(c.Request.Context(), callerIdentity(c), models.Identity(req.Admin)); err != nil {
		h.writeLedgerError(c, err, "admin_transfer_failed", "admin", req.Admin)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": req.Admin})
}

// @Summary      Set height
// @Description  Admin only. Available when the deployment runs on a manual height source; backward jumps are ignored.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body   HeightRequest  true  "Height payload"
// @Success      200   {object}  map[string]interface{}  "height"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]interface{}
// @Router       /api/v1/admin/height [post]
// @Security     BearerAuth
func (h *Handler) setHeight(c *gin.Context) {
	var req HeightRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.SetHeight(callerIdentity(c), req.Height); err != nil {
		h.writeLedgerError(c, err, "admin_set_height_failed", "height", req.Height)
		return
	}
	c.JSON(http.StatusOK, gin.H{"height": h.services.Status().Height})
}
