package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

const resourceHighlight = "highlight"

type HighlightHandler struct {
	service services.HighlightServiceInterface
}

func NewHighlightHandler(service services.HighlightServiceInterface) *HighlightHandler {
	return &HighlightHandler{service: service}
}

func (h *HighlightHandler) List(c *gin.Context) {
	highlights, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlights retrieved", highlights)
}

func (h *HighlightHandler) Create(c *gin.Context) {
	var req models.CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	highlight, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusCreated, "Highlight created successfully", highlight)
}

func (h *HighlightHandler) Update(c *gin.Context) {
	var req models.UpdateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	highlight, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlight updated successfully", highlight)
}

func (h *HighlightHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlight deleted successfully", nil)
}

func (h *HighlightHandler) ToggleActive(c *gin.Context) {
	highlight, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlight status updated", highlight)
}

func (h *HighlightHandler) ToggleFeatured(c *gin.Context) {
	highlight, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlight featured status updated", highlight)
}
