package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service services.StatsServiceInterface
}

func NewStatsHandler(service services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		respondServiceError(c, "", err)
		return
	}
	respondOK(c, http.StatusOK, "Statistics retrieved", stats)
}
