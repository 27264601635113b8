package models

import (
	"encoding/json"
	"strings"
	"time"
)

// HighlightCategory classifies a design portfolio highlight
type HighlightCategory string

const (
	HighlightCategoryUIDesign    HighlightCategory = "ui-design"
	HighlightCategoryUXResearch  HighlightCategory = "ux-research"
	HighlightCategoryMobileApp   HighlightCategory = "mobile-app"
	HighlightCategoryWebDesign   HighlightCategory = "web-design"
	HighlightCategoryBranding    HighlightCategory = "branding"
	HighlightCategoryPrototype   HighlightCategory = "prototype"
	HighlightCategoryWireframe   HighlightCategory = "wireframe"
	HighlightCategoryUserTesting HighlightCategory = "user-testing"
	HighlightCategoryOther       HighlightCategory = "other"
)

// HighlightImage is one image in a highlight gallery
type HighlightImage struct {
	URL       string `json:"url" binding:"required,url"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"isPrimary"`
}

// NormalizeImages drops images without a url and leaves exactly one primary
// image: the first flagged one, or the first image when none is flagged.
func NormalizeImages(images []HighlightImage) []HighlightImage {
	out := make([]HighlightImage, 0, len(images))
	for _, img := range images {
		img.URL = strings.TrimSpace(img.URL)
		if img.URL != "" {
			out = append(out, img)
		}
	}
	primary := -1
	for i := range out {
		if out[i].IsPrimary && primary < 0 {
			primary = i
		}
		out[i].IsPrimary = false
	}
	if len(out) > 0 {
		if primary < 0 {
			primary = 0
		}
		out[primary].IsPrimary = true
	}
	return out
}

// PortfolioHighlight is a design case study shown on the highlights page
type PortfolioHighlight struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Images           []HighlightImage  `json:"images"`
	ProjectURL       string            `json:"projectUrl"`
	Tools            []string          `json:"tools"`
	Category         HighlightCategory `json:"category"`
	DisplayOrder     int               `json:"displayOrder"`
	IsActive         bool              `json:"isActive"`
	Featured         bool              `json:"featured"`
	CompletionDate   *Date             `json:"completionDate,omitempty"`
	ClientName       string            `json:"clientName"`
	ProjectDuration  string            `json:"projectDuration"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// PrimaryImageURL returns the url of the primary image, or "" without images
func (h *PortfolioHighlight) PrimaryImageURL() string {
	for _, img := range h.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(h.Images) > 0 {
		return h.Images[0].URL
	}
	return ""
}

func (h PortfolioHighlight) MarshalJSON() ([]byte, error) {
	type plain PortfolioHighlight
	if h.Images == nil {
		h.Images = []HighlightImage{}
	}
	return json.Marshal(struct {
		plain
		ImageURL string `json:"imageUrl"`
	}{plain(h), h.PrimaryImageURL()})
}

func legacyImages(images []HighlightImage, imageURL string) []HighlightImage {
	if len(images) == 0 && strings.TrimSpace(imageURL) != "" {
		images = []HighlightImage{{URL: imageURL, IsPrimary: true}}
	}
	return NormalizeImages(images)
}

type CreateHighlightRequest struct {
	Title            string            `json:"title" binding:"required,notblank,max=200"`
	Description      string            `json:"description" binding:"required,notblank,max=5000"`
	ShortDescription string            `json:"shortDescription" binding:"max=300"`
	Images           []HighlightImage  `json:"images" binding:"max=20,dive"`
	ImageURL         string            `json:"imageUrl" binding:"omitempty,url"`
	ProjectURL       string            `json:"projectUrl" binding:"omitempty,url"`
	Tools            []string          `json:"tools"`
	Category         HighlightCategory `json:"category" binding:"omitempty,oneof=ui-design ux-research mobile-app web-design branding prototype wireframe user-testing other"`
	DisplayOrder     int               `json:"displayOrder"`
	IsActive         *bool             `json:"isActive"`
	Featured         bool              `json:"featured"`
	CompletionDate   *Date             `json:"completionDate"`
	ClientName       string            `json:"clientName" binding:"max=200"`
	ProjectDuration  string            `json:"projectDuration" binding:"max=100"`
}

func (r *CreateHighlightRequest) ToHighlight() *PortfolioHighlight {
	category := r.Category
	if category == "" {
		category = HighlightCategoryOther
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &PortfolioHighlight{
		Title:            strings.TrimSpace(r.Title),
		Description:      strings.TrimSpace(r.Description),
		ShortDescription: strings.TrimSpace(r.ShortDescription),
		Images:           legacyImages(r.Images, r.ImageURL),
		ProjectURL:       r.ProjectURL,
		Tools:            cleanList(r.Tools),
		Category:         category,
		DisplayOrder:     r.DisplayOrder,
		IsActive:         active,
		Featured:         r.Featured,
		CompletionDate:   r.CompletionDate,
		ClientName:       r.ClientName,
		ProjectDuration:  r.ProjectDuration,
	}
}

type UpdateHighlightRequest struct {
	Title            *string            `json:"title" binding:"omitempty,notblank,max=200"`
	Description      *string            `json:"description" binding:"omitempty,notblank,max=5000"`
	ShortDescription *string            `json:"shortDescription" binding:"omitempty,max=300"`
	Images           *[]HighlightImage  `json:"images"`
	ImageURL         *string            `json:"imageUrl" binding:"omitempty,url|len=0"`
	ProjectURL       *string            `json:"projectUrl" binding:"omitempty,url|len=0"`
	Tools            *[]string          `json:"tools"`
	Category         *HighlightCategory `json:"category" binding:"omitempty,oneof=ui-design ux-research mobile-app web-design branding prototype wireframe user-testing other"`
	DisplayOrder     *int               `json:"displayOrder"`
	IsActive         *bool              `json:"isActive"`
	Featured         *bool              `json:"featured"`
	CompletionDate   *Date              `json:"completionDate"`
	ClientName       *string            `json:"clientName" binding:"omitempty,max=200"`
	ProjectDuration  *string            `json:"projectDuration" binding:"omitempty,max=100"`
}

// ApplyTo copies the set fields onto h. A lone imageUrl replaces the primary image.
func (r *UpdateHighlightRequest) ApplyTo(h *PortfolioHighlight) {
	if r.Title != nil {
		h.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		h.Description = strings.TrimSpace(*r.Description)
	}
	if r.ShortDescription != nil {
		h.ShortDescription = strings.TrimSpace(*r.ShortDescription)
	}
	switch {
	case r.Images != nil:
		url := ""
		if r.ImageURL != nil {
			url = *r.ImageURL
		}
		h.Images = legacyImages(*r.Images, url)
	case r.ImageURL != nil:
		h.Images = replacePrimary(h.Images, *r.ImageURL)
	}
	if r.ProjectURL != nil {
		h.ProjectURL = *r.ProjectURL
	}
	if r.Tools != nil {
		h.Tools = cleanList(*r.Tools)
	}
	if r.Category != nil {
		h.Category = *r.Category
	}
	if r.DisplayOrder != nil {
		h.DisplayOrder = *r.DisplayOrder
	}
	if r.IsActive != nil {
		h.IsActive = *r.IsActive
	}
	if r.Featured != nil {
		h.Featured = *r.Featured
	}
	if r.CompletionDate != nil {
		h.CompletionDate = r.CompletionDate
	}
	if r.ClientName != nil {
		h.ClientName = *r.ClientName
	}
	if r.ProjectDuration != nil {
		h.ProjectDuration = *r.ProjectDuration
	}
}

func replacePrimary(images []HighlightImage, url string) []HighlightImage {
	images = NormalizeImages(images)
	if strings.TrimSpace(url) == "" {
		out := make([]HighlightImage, 0, len(images))
		for _, img := range images {
			if !img.IsPrimary {
				out = append(out, img)
			}
		}
		return NormalizeImages(out)
	}
	for i := range images {
		if images[i].IsPrimary {
			images[i].URL = url
			return images
		}
	}
	return []HighlightImage{{URL: url, IsPrimary: true}}
}
