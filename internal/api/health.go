package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks a backing store.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler creates a HealthHandler. ping may be nil.
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health reports whether the API and its database are up
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "degraded",
				"message":  "database unavailable",
				"database": "down",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Calorie Quest API is running",
		"database": "up",
	})
}
