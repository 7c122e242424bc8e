package handlers

import (
	"errors"
	"net/http"

	"energy_oracle/internal/oracle"
	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
)

const errInvalidBodyPref = "invalid body: "

// httpStatusOf maps the closed rejection table onto HTTP statuses.
func httpStatusOf(code oracle.Code) int {
	switch code {
	case oracle.CodeNotAuthorized:
		return http.StatusForbidden
	case oracle.CodeInvalidSensor:
		return http.StatusNotFound
	case oracle.CodeInvalidAsset, oracle.CodeInvalidData, oracle.CodeInvalidEnergyType:
		return http.StatusBadRequest
	case oracle.CodePaused, oracle.CodeAlreadyRegistered:
		return http.StatusConflict
	case oracle.CodeTimestampTooOld:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeLedgerError renders a ledger failure: coded rejections keep their
// code in the body, infrastructure failures are logged and masked as 500.
func (h *Handler) writeLedgerError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	if code, ok := oracle.CodeOf(err); ok {
		c.JSON(httpStatusOf(code), gin.H{"error": err.Error(), "code": uint32(code)})
		return
	}
	if errors.Is(err, service.ErrWallClockHeight) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err, "path", c.FullPath())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}
