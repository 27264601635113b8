package storage

import (
	"fmt"
	"strings"
)

const (
	// MaxImageSize is the upload limit for portfolio images
	MaxImageSize = 10 * 1024 * 1024
	// MaxResumeSize is the upload limit for resume documents
	MaxResumeSize = 10 * 1024 * 1024
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ValidateImage checks the content type and size of an uploaded image
func ValidateImage(contentType string, size int64) error {
	if _, ok := imageTypes[normalizeType(contentType)]; !ok {
		return fmt.Errorf("invalid file type: %s. Allowed types: jpeg, png, webp, gif", contentType)
	}
	return validateSize(size, MaxImageSize)
}

// ValidateResume checks the content type and size of an uploaded resume
func ValidateResume(contentType string, size int64) error {
	if normalizeType(contentType) != "application/pdf" {
		return fmt.Errorf("invalid file type: %s. Only PDF files are allowed", contentType)
	}
	return validateSize(size, MaxResumeSize)
}

// ImageExtension returns the canonical extension for an image content type
func ImageExtension(contentType string) string {
	return imageTypes[normalizeType(contentType)]
}

func validateSize(size, limit int64) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > limit {
		return fmt.Errorf("file too large: %d bytes (max %d bytes)", size, limit)
	}
	return nil
}

func normalizeType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
