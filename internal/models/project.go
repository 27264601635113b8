package models

import (
	"strings"
	"time"
)

// ProjectCategory groups projects on the portfolio page
type ProjectCategory string

const (
	ProjectCategoryWeb       ProjectCategory = "Web"
	ProjectCategoryUI        ProjectCategory = "UI"
	ProjectCategoryFullstack ProjectCategory = "Fullstack"
	ProjectCategoryResearch  ProjectCategory = "Research"
	ProjectCategoryOther     ProjectCategory = "Other"
)

// ProjectCategories lists every valid category in display order
var ProjectCategories = []ProjectCategory{
	ProjectCategoryWeb,
	ProjectCategoryUI,
	ProjectCategoryFullstack,
	ProjectCategoryResearch,
	ProjectCategoryOther,
}

func (c ProjectCategory) IsValid() bool {
	for _, known := range ProjectCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a portfolio project
type Project struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Technologies   []string        `json:"technologies"`
	ImageURL       string          `json:"imageUrl"`
	GithubURL      string          `json:"githubUrl"`
	LiveURL        string          `json:"liveUrl"`
	Category       ProjectCategory `json:"category"`
	Featured       bool            `json:"featured"`
	CompletionDate *Date           `json:"completionDate,omitempty"`
	Challenges     []string        `json:"challenges"`
	Solutions      []string        `json:"solutions"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CreateProjectRequest is the body of POST /admin/projects
type CreateProjectRequest struct {
	Title          string          `json:"title" binding:"required,notblank,max=200"`
	Description    string          `json:"description" binding:"required,notblank,max=5000"`
	Technologies   []string        `json:"technologies" binding:"max=50"`
	ImageURL       string          `json:"imageUrl" binding:"omitempty,url"`
	GithubURL      string          `json:"githubUrl" binding:"omitempty,url"`
	LiveURL        string          `json:"liveUrl" binding:"omitempty,url"`
	Category       ProjectCategory `json:"category" binding:"omitempty,oneof=Web UI Fullstack Research Other"`
	Featured       bool            `json:"featured"`
	CompletionDate *Date           `json:"completionDate"`
	Challenges     []string        `json:"challenges"`
	Solutions      []string        `json:"solutions"`
}

// ToProject builds a new project with defaults applied
func (r *CreateProjectRequest) ToProject() *Project {
	category := r.Category
	if category == "" {
		category = ProjectCategoryWeb
	}
	return &Project{
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		Technologies:   cleanList(r.Technologies),
		ImageURL:       r.ImageURL,
		GithubURL:      r.GithubURL,
		LiveURL:        r.LiveURL,
		Category:       category,
		Featured:       r.Featured,
		CompletionDate: r.CompletionDate,
		Challenges:     cleanList(r.Challenges),
		Solutions:      cleanList(r.Solutions),
	}
}

// UpdateProjectRequest is the body of PUT /admin/projects/:id. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title          *string          `json:"title" binding:"omitempty,notblank,max=200"`
	Description    *string          `json:"description" binding:"omitempty,notblank,max=5000"`
	Technologies   *[]string        `json:"technologies"`
	ImageURL       *string          `json:"imageUrl" binding:"omitempty,url|len=0"`
	GithubURL      *string          `json:"githubUrl" binding:"omitempty,url|len=0"`
	LiveURL        *string          `json:"liveUrl" binding:"omitempty,url|len=0"`
	Category       *ProjectCategory `json:"category" binding:"omitempty,oneof=Web UI Fullstack Research Other"`
	Featured       *bool            `json:"featured"`
	CompletionDate *Date            `json:"completionDate"`
	Challenges     *[]string        `json:"challenges"`
	Solutions      *[]string        `json:"solutions"`
}

// ApplyTo copies the set fields onto p
func (r *UpdateProjectRequest) ApplyTo(p *Project) {
	if r.Title != nil {
		p.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		p.Description = strings.TrimSpace(*r.Description)
	}
	if r.Technologies != nil {
		p.Technologies = cleanList(*r.Technologies)
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.GithubURL != nil {
		p.GithubURL = *r.GithubURL
	}
	if r.LiveURL != nil {
		p.LiveURL = *r.LiveURL
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.CompletionDate != nil {
		p.CompletionDate = r.CompletionDate
	}
	if r.Challenges != nil {
		p.Challenges = cleanList(*r.Challenges)
	}
	if r.Solutions != nil {
		p.Solutions = cleanList(*r.Solutions)
	}
}

// ProjectFilter narrows a project listing
type ProjectFilter struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// Normalize treats "All" as no category and clamps paging
func (f ProjectFilter) Normalize() ProjectFilter {
	if f.Category == "All" {
		f.Category = ""
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return f
}

// Matches reports whether p passes the category and featured filters
func (f ProjectFilter) Matches(p *Project) bool {
	if f.Category != "" && f.Category != "All" && string(p.Category) != f.Category {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// Apply filters projects and returns the requested page with the total match count.
// A zero Limit returns every match.
func (f ProjectFilter) Apply(projects []*Project) ([]*Project, int) {
	f = f.Normalize()
	matched := make([]*Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}

	total := len(matched)
	if f.Limit == 0 {
		return matched, total
	}

	start := (f.Page - 1) * f.Limit
	if start >= total {
		return []*Project{}, total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// ProjectStats summarises the project collection
type ProjectStats struct {
	Total      int            `json:"total"`
	Featured   int            `json:"featured"`
	ByCategory map[string]int `json:"byCategory"`
}

// ComputeProjectStats counts projects by category and featured flag
func ComputeProjectStats(projects []*Project) ProjectStats {
	stats := ProjectStats{ByCategory: make(map[string]int, len(ProjectCategories))}
	for _, c := range ProjectCategories {
		stats.ByCategory[string(c)] = 0
	}
	for _, p := range projects {
		stats.Total++
		if p.Featured {
			stats.Featured++
		}
		stats.ByCategory[string(p.Category)]++
	}
	return stats
}
