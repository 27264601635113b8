package models

import (
	"strings"
	"time"
)

// Resume is an uploaded CV document. FileKey locates the PDF in object storage
// and never leaves the server.
type Resume struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Version       string    `json:"version"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	IsPublic      bool      `json:"isPublic"`
	IsActive      bool      `json:"isActive"`
	FileKey       string    `json:"-"`
	FileSize      int64     `json:"fileSize"`
	OriginalName  string    `json:"originalName"`
	MimeType      string    `json:"mimeType"`
	DownloadCount int       `json:"downloadCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ResumeUploadForm is the metadata sent alongside the "resume" multipart file
type ResumeUploadForm struct {
	Title       string `form:"title" binding:"max=200"`
	Version     string `form:"version" binding:"max=50"`
	Description string `form:"description" binding:"max=2000"`
	Tags        string `form:"tags"`
	IsPublic    *bool  `form:"isPublic"`
}

// ToResume builds the resume record for an uploaded file. A missing title
// falls back to the file name.
func (f *ResumeUploadForm) ToResume(originalName string) *Resume {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = strings.TrimSuffix(originalName, ".pdf")
	}
	version := strings.TrimSpace(f.Version)
	if version == "" {
		version = "1.0"
	}
	public := true
	if f.IsPublic != nil {
		public = *f.IsPublic
	}
	return &Resume{
		Title:        title,
		Version:      version,
		Description:  strings.TrimSpace(f.Description),
		Tags:         ParseTags(f.Tags),
		IsPublic:     public,
		OriginalName: originalName,
	}
}

// ParseTags accepts a JSON array or a comma separated list
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		raw = strings.Trim(raw, "[]")
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.Trim(strings.TrimSpace(parts[i]), `"`)
		}
		return cleanList(parts)
	}
	return cleanList(strings.Split(raw, ","))
}

type UpdateResumeRequest struct {
	Title       *string   `json:"title" binding:"omitempty,notblank,max=200"`
	Version     *string   `json:"version" binding:"omitempty,max=50"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Tags        *[]string `json:"tags"`
	IsPublic    *bool     `json:"isPublic"`
}

// ApplyTo copies the set fields onto r. The active flag only changes through toggle-active.
func (u *UpdateResumeRequest) ApplyTo(r *Resume) {
	if u.Title != nil {
		r.Title = strings.TrimSpace(*u.Title)
	}
	if u.Version != nil {
		r.Version = strings.TrimSpace(*u.Version)
	}
	if u.Description != nil {
		r.Description = strings.TrimSpace(*u.Description)
	}
	if u.Tags != nil {
		r.Tags = cleanList(*u.Tags)
	}
	if u.IsPublic != nil {
		r.IsPublic = *u.IsPublic
	}
}
