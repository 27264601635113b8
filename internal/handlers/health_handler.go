package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db         repository.Pinger
	cacheReady func() bool
}

func NewHealthHandler(db repository.Pinger, cacheReady func() bool) *HealthHandler {
	return &HealthHandler{
		db:         db,
		cacheReady: cacheReady,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		attachError(c, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"status":  "unavailable",
			"reason":  "database unreachable",
		})
		return
	}

	if !h.cacheReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"status":  "unavailable",
			"reason":  "public cache not initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
