package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// JourneyMilestone is one entry of the career timeline
type JourneyMilestone struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateJourneyRequest struct {
	Year         int    `json:"year" binding:"required,min=1900,max=2200"`
	Title        string `json:"title" binding:"required,notblank,max=200"`
	Description  string `json:"description" binding:"required,notblank,max=5000"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r *CreateJourneyRequest) ToMilestone() *JourneyMilestone {
	return &JourneyMilestone{
		Year:         r.Year,
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		DisplayOrder: r.DisplayOrder,
	}
}

type UpdateJourneyRequest struct {
	Year         *int    `json:"year" binding:"omitempty,min=1900,max=2200"`
	Title        *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description  *string `json:"description" binding:"omitempty,notblank,max=5000"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (r *UpdateJourneyRequest) ApplyTo(m *JourneyMilestone) {
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.DisplayOrder != nil {
		m.DisplayOrder = *r.DisplayOrder
	}
}

// ParseYear converts a form value such as "2021" into a year
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1900 || year > 2200 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
