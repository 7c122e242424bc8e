package handlers

import (
	"net/http"
	"strings"

	"energy_oracle/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey     = "identity"
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-ID"
)

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the caller.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// identityMiddleware resolves the Bearer token into the caller identity the
// ledger checks roles against.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	identity, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(identityKey, identity)
	c.Next()
}

// callerIdentity returns the identity stored by identityMiddleware.
func callerIdentity(c *gin.Context) models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.NullIdentity
	}
	id, ok := v.(models.Identity)
	if !ok {
		return models.NullIdentity
	}
	return id
}
