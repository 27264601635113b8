package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service services.UploadServiceInterface
}

func NewUploadHandler(service services.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := readUpload(c, "image", storage.MaxImageSize)
	if err != nil {
		respondServiceError(c, "", err)
		return
	}

	image, err := h.service.UploadImage(c.Request.Context(), file)
	if err != nil {
		respondServiceError(c, "", err)
		return
	}
	respondOK(c, http.StatusCreated, "Image uploaded successfully", image)
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req models.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), req.ImageURL); err != nil {
		respondServiceError(c, "image", err)
		return
	}
	respondOK(c, http.StatusOK, "Image deleted successfully", nil)
}

// readUpload reads the multipart file field into memory. The content type is
// sniffed from the bytes, falling back to the part header.
func readUpload(c *gin.Context, field string, maxSize int64) (*services.UploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, apperrors.NewValidationError(field, "No file uploaded")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("File too large. Maximum size is %dMB", maxSize>>20))
		}
		return nil, apperrors.NewValidationError(field, "Invalid multipart form")
	}
	if header.Size > maxSize {
		return nil, apperrors.NewValidationError(field, fmt.Sprintf("File too large. Maximum size is %dMB", maxSize>>20))
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" || strings.HasPrefix(contentType, "text/plain") {
		if declared := header.Header.Get("Content-Type"); declared != "" {
			contentType = declared
		}
	}

	return &services.UploadedFile{
		Name:        filepath.Base(header.Filename),
		ContentType: contentType,
		Data:        data,
	}, nil
}
