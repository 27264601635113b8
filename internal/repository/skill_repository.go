package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"go.uber.org/zap"
)

const skillColumns = `id, name, category, proficiency_level, icon, color, description, display_order,
	is_active, years_of_experience, projects, certifications, created_at, updated_at`

type SkillRepository struct {
	db DB
}

func NewSkillRepository(db DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func scanSkill(row rowScanner) (*models.Skill, error) {
	var s models.Skill
	var category string
	if err := row.Scan(
		&s.ID, &s.Name, &category, &s.ProficiencyLevel, &s.Icon, &s.Color, &s.Description, &s.DisplayOrder,
		&s.IsActive, &s.YearsOfExperience, &s.Projects, &s.Certifications, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Category = models.SkillCategory(category)
	s.Projects = nonNil(s.Projects)
	if s.Certifications == nil {
		s.Certifications = []models.Certification{}
	}
	return &s, nil
}

// List returns skills ordered by displayOrder, then name
func (r *SkillRepository) List(ctx context.Context, activeOnly bool) (skills []*models.Skill, err error) {
	start := time.Now()
	defer func() { observe("listSkills", start, err, zap.Int("count", len(skills))) }()

	query := "SELECT " + skillColumns + " FROM skills"
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY display_order ASC, name ASC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	skills, err = collect(rows, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill row: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	return getByID(ctx, r.db, "getSkill", "skill", "skills", skillColumns, id, scanSkill)
}

func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) (err error) {
	start := time.Now()
	defer func() { observe("createSkill", start, err) }()

	s.ID = newID()
	query := `
		INSERT INTO skills (id, name, category, proficiency_level, icon, color, description,
			display_order, is_active, years_of_experience, projects, certifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		s.ID, s.Name, string(s.Category), s.ProficiencyLevel, s.Icon, s.Color, s.Description,
		s.DisplayOrder, s.IsActive, s.YearsOfExperience, nonNil(s.Projects), s.Certifications,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) (err error) {
	start := time.Now()
	defer func() { observe("updateSkill", start, err) }()

	query := `
		UPDATE skills
		SET name = $2, category = $3, proficiency_level = $4, icon = $5, color = $6, description = $7,
			display_order = $8, is_active = $9, years_of_experience = $10, projects = $11,
			certifications = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query,
		s.ID, s.Name, string(s.Category), s.ProficiencyLevel, s.Icon, s.Color, s.Description,
		s.DisplayOrder, s.IsActive, s.YearsOfExperience, nonNil(s.Projects), s.Certifications,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return notFound(err, "skill")
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "deleteSkill", "skills", id)
}

func (r *SkillRepository) ToggleActive(ctx context.Context, id string) (*models.Skill, error) {
	return updateReturning(ctx, r.db, "toggleSkillActive", "skill", "skills",
		"is_active = NOT is_active, updated_at = NOW()", skillColumns, id, scanSkill)
}
