package handlers

import (
	"errors"
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the read-only endpoints of the public site
type PublicHandler struct {
	service services.PublicServiceInterface
}

func NewPublicHandler(service services.PublicServiceInterface) *PublicHandler {
	return &PublicHandler{service: service}
}

func (h *PublicHandler) Projects(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}

	projects, err := h.service.Projects(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Projects retrieved", projects)
}

func (h *PublicHandler) Project(c *gin.Context) {
	project, err := h.service.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project retrieved", project)
}

func (h *PublicHandler) Skills(c *gin.Context) {
	skills, err := h.service.Skills(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusOK, "Skills retrieved", skills)
}

func (h *PublicHandler) Journey(c *gin.Context) {
	milestones, err := h.service.Journey(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceMilestone, err)
		return
	}
	respondOK(c, http.StatusOK, "Journey retrieved", milestones)
}

func (h *PublicHandler) Highlights(c *gin.Context) {
	highlights, err := h.service.Highlights(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceHighlight, err)
		return
	}
	respondOK(c, http.StatusOK, "Highlights retrieved", highlights)
}

func (h *PublicHandler) ActiveResume(c *gin.Context) {
	resume, err := h.service.ActiveResume(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "No active resume found", err)
			return
		}
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Active resume retrieved", resume)
}

func (h *PublicHandler) PublicResumes(c *gin.Context) {
	resumes, err := h.service.PublicResumes(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Public resumes retrieved", resumes)
}
