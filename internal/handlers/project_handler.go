package handlers

import (
	"net/http"
	"strconv"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

const resourceProject = "project"

type ProjectHandler struct {
	service services.ProjectServiceInterface
}

func NewProjectHandler(service services.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}

	projects, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}

	respondList(c, "Projects retrieved", projects, total)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project retrieved", project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusCreated, "Project created successfully", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project updated successfully", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project deleted successfully", nil)
}

func (h *ProjectHandler) ToggleFeatured(c *gin.Context) {
	project, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project featured status updated", project)
}

func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceProject, err)
		return
	}
	respondOK(c, http.StatusOK, "Project statistics retrieved", stats)
}

// parseProjectFilter reads category, featured, page and limit query parameters
func parseProjectFilter(c *gin.Context) (models.ProjectFilter, error) {
	filter := models.ProjectFilter{Category: c.Query("category")}

	var err error
	if filter.Featured, err = boolQuery(c, "featured"); err != nil {
		return filter, err
	}
	if filter.Page, err = intQuery(c, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.NewValidationError(key, key+" must be a non-negative integer")
	}
	return n, nil
}

func boolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(key, key+" must be true or false")
	}
	return &v, nil
}
