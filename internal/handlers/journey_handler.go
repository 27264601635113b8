package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

const resourceMilestone = "journey milestone"

type JourneyHandler struct {
	service services.JourneyServiceInterface
}

func NewJourneyHandler(service services.JourneyServiceInterface) *JourneyHandler {
	return &JourneyHandler{service: service}
}

func (h *JourneyHandler) List(c *gin.Context) {
	milestones, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceMilestone, err)
		return
	}
	respondOK(c, http.StatusOK, "Journey retrieved", milestones)
}

func (h *JourneyHandler) Create(c *gin.Context) {
	var req models.CreateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	milestone, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, resourceMilestone, err)
		return
	}
	respondOK(c, http.StatusCreated, "Journey milestone created successfully", milestone)
}

func (h *JourneyHandler) Update(c *gin.Context) {
	var req models.UpdateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	milestone, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, resourceMilestone, err)
		return
	}
	respondOK(c, http.StatusOK, "Journey milestone updated successfully", milestone)
}

func (h *JourneyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceMilestone, err)
		return
	}
	respondOK(c, http.StatusOK, "Journey milestone deleted successfully", nil)
}
