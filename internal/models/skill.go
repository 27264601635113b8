package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
)

// SkillCategory groups skills on the skills page
type SkillCategory string

const (
	SkillCategoryFrontend   SkillCategory = "frontend"
	SkillCategoryBackend    SkillCategory = "backend"
	SkillCategoryUIUX       SkillCategory = "uiux"
	SkillCategoryTools      SkillCategory = "tools"
	SkillCategoryDatabase   SkillCategory = "database"
	SkillCategoryDevOps     SkillCategory = "devops"
	SkillCategoryLanguages  SkillCategory = "languages"
	SkillCategoryFrameworks SkillCategory = "frameworks"
	SkillCategoryCloud      SkillCategory = "cloud"
	SkillCategoryMobile     SkillCategory = "mobile"
	SkillCategoryOther      SkillCategory = "other"
)

// Proficiency is the label derived from a skill's numeric level
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// ProficiencyFor maps a 1-100 level to its label
func ProficiencyFor(level int) Proficiency {
	switch {
	case level >= 80:
		return ProficiencyExpert
	case level >= 60:
		return ProficiencyAdvanced
	case level >= 40:
		return ProficiencyIntermediate
	default:
		return ProficiencyBeginner
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Certification backs a skill with a credential
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Skill is an entry on the skills page. Proficiency is never stored.
type Skill struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          SkillCategory   `json:"category"`
	ProficiencyLevel  int             `json:"proficiencyLevel"`
	Icon              SkillIcon       `json:"icon"`
	Color             string          `json:"color"`
	Description       string          `json:"description,omitempty"`
	DisplayOrder      int             `json:"displayOrder"`
	IsActive          bool            `json:"isActive"`
	YearsOfExperience int             `json:"yearsOfExperience"`
	Projects          []string        `json:"projects"`
	Certifications    []Certification `json:"certifications"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Proficiency derives the label from ProficiencyLevel
func (s *Skill) Proficiency() Proficiency {
	return ProficiencyFor(s.ProficiencyLevel)
}

func (s Skill) MarshalJSON() ([]byte, error) {
	type plain Skill
	return json.Marshal(struct {
		plain
		Proficiency Proficiency `json:"proficiency"`
	}{plain(s), s.Proficiency()})
}

// Validate checks the fields binding tags cannot express
func (s *Skill) Validate() error {
	if err := s.Icon.Validate(); err != nil {
		return apperrors.NewValidationError("icon.name", fmt.Sprintf("Unknown icon: %s", s.Icon.Name))
	}
	if s.Color != "" && !hexColor.MatchString(s.Color) {
		return apperrors.NewValidationError("color", "Color must be a hex value like #61DAFB")
	}
	return nil
}

// CreateSkillRequest is the body of POST /admin/skills
type CreateSkillRequest struct {
	Name              string          `json:"name" binding:"required,notblank,max=100"`
	Category          SkillCategory   `json:"category" binding:"required,oneof=frontend backend uiux tools database devops languages frameworks cloud mobile other"`
	ProficiencyLevel  int             `json:"proficiencyLevel" binding:"required,min=1,max=100"`
	Icon              *SkillIcon      `json:"icon"`
	Color             string          `json:"color"`
	Description       string          `json:"description" binding:"max=1000"`
	DisplayOrder      int             `json:"displayOrder"`
	IsActive          *bool           `json:"isActive"`
	YearsOfExperience int             `json:"yearsOfExperience" binding:"min=0,max=80"`
	Projects          []string        `json:"projects"`
	Certifications    []Certification `json:"certifications" binding:"dive"`
}

// ToSkill builds a new skill. Skills start active and default to the generic
// icon with its catalog color.
func (r *CreateSkillRequest) ToSkill() *Skill {
	icon := SkillIcon{Name: DefaultIconID}
	if r.Icon != nil && r.Icon.Name != "" {
		icon = *r.Icon
	}
	color := r.Color
	if color == "" {
		if spec, ok := icon.Name.Spec(); ok {
			color = spec.Color
		}
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &Skill{
		Name:              strings.TrimSpace(r.Name),
		Category:          r.Category,
		ProficiencyLevel:  r.ProficiencyLevel,
		Icon:              icon,
		Color:             color,
		Description:       r.Description,
		DisplayOrder:      r.DisplayOrder,
		IsActive:          active,
		YearsOfExperience: r.YearsOfExperience,
		Projects:          cleanList(r.Projects),
		Certifications:    nonNilCerts(r.Certifications),
	}
}

// UpdateSkillRequest is the body of PUT /admin/skills/:id
type UpdateSkillRequest struct {
	Name              *string          `json:"name" binding:"omitempty,notblank,max=100"`
	Category          *SkillCategory   `json:"category" binding:"omitempty,oneof=frontend backend uiux tools database devops languages frameworks cloud mobile other"`
	ProficiencyLevel  *int             `json:"proficiencyLevel" binding:"omitempty,min=1,max=100"`
	Icon              *SkillIcon       `json:"icon"`
	Color             *string          `json:"color"`
	Description       *string          `json:"description" binding:"omitempty,max=1000"`
	DisplayOrder      *int             `json:"displayOrder"`
	IsActive          *bool            `json:"isActive"`
	YearsOfExperience *int             `json:"yearsOfExperience" binding:"omitempty,min=0,max=80"`
	Projects          *[]string        `json:"projects"`
	Certifications    *[]Certification `json:"certifications"`
}

// ApplyTo copies the set fields onto s
func (r *UpdateSkillRequest) ApplyTo(s *Skill) {
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		s.Category = *r.Category
	}
	if r.ProficiencyLevel != nil {
		s.ProficiencyLevel = *r.ProficiencyLevel
	}
	if r.Icon != nil {
		s.Icon = *r.Icon
	}
	if r.Color != nil {
		s.Color = *r.Color
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.DisplayOrder != nil {
		s.DisplayOrder = *r.DisplayOrder
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	if r.YearsOfExperience != nil {
		s.YearsOfExperience = *r.YearsOfExperience
	}
	if r.Projects != nil {
		s.Projects = cleanList(*r.Projects)
	}
	if r.Certifications != nil {
		s.Certifications = nonNilCerts(*r.Certifications)
	}
}

func nonNilCerts(in []Certification) []Certification {
	if in == nil {
		return []Certification{}
	}
	return in
}
