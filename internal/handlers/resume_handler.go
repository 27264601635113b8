package handlers

import (
	"fmt"
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const resourceResume = "resume"

type ResumeHandler struct {
	service services.ResumeServiceInterface
}

func NewResumeHandler(service services.ResumeServiceInterface) *ResumeHandler {
	return &ResumeHandler{service: service}
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resumes retrieved", resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resume retrieved", resume)
}

// Upload accepts a multipart form with the PDF in "resume" plus metadata fields
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, err := readUpload(c, "resume", storage.MaxResumeSize)
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}

	var form models.ResumeUploadForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}

	resume, err := h.service.Upload(c.Request.Context(), &form, file)
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusCreated, "Resume uploaded successfully", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req models.UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resume, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resume updated successfully", resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resume deleted successfully", nil)
}

func (h *ResumeHandler) ToggleActive(c *gin.Context) {
	resume, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resume active status updated", resume)
}

func (h *ResumeHandler) TogglePublic(c *gin.Context) {
	resume, err := h.service.TogglePublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	respondOK(c, http.StatusOK, "Resume visibility updated", resume)
}

// Download streams a public resume file
func (h *ResumeHandler) Download(c *gin.Context) {
	download, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceResume, err)
		return
	}
	defer func() {
		if closeErr := download.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close resume stream", zap.Error(closeErr))
		}
	}()

	c.DataFromReader(http.StatusOK, download.Size, download.ContentType, download.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", download.Filename),
	})
}
