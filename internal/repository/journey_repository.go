package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"go.uber.org/zap"
)

const journeyColumns = `id, year, title, description, display_order, created_at, updated_at`

type JourneyRepository struct {
	db DB
}

func NewJourneyRepository(db DB) *JourneyRepository {
	return &JourneyRepository{db: db}
}

func scanMilestone(row rowScanner) (*models.JourneyMilestone, error) {
	var m models.JourneyMilestone
	if err := row.Scan(&m.ID, &m.Year, &m.Title, &m.Description, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the timeline ordered by displayOrder, ties broken by year
func (r *JourneyRepository) List(ctx context.Context) (milestones []*models.JourneyMilestone, err error) {
	start := time.Now()
	defer func() { observe("listJourney", start, err, zap.Int("count", len(milestones))) }()

	rows, err := r.db.Query(ctx, "SELECT "+journeyColumns+" FROM journey_milestones ORDER BY display_order ASC, year ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query journey milestones: %w", err)
	}
	milestones, err = collect(rows, scanMilestone)
	if err != nil {
		return nil, fmt.Errorf("failed to scan journey milestone row: %w", err)
	}
	return milestones, nil
}

func (r *JourneyRepository) GetByID(ctx context.Context, id string) (*models.JourneyMilestone, error) {
	return getByID(ctx, r.db, "getMilestone", "milestone", "journey_milestones", journeyColumns, id, scanMilestone)
}

func (r *JourneyRepository) Create(ctx context.Context, m *models.JourneyMilestone) (err error) {
	start := time.Now()
	defer func() { observe("createMilestone", start, err) }()

	m.ID = newID()
	err = r.db.QueryRow(ctx, `
		INSERT INTO journey_milestones (id, year, title, description, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, m.ID, m.Year, m.Title, m.Description, m.DisplayOrder).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert journey milestone: %w", err)
	}
	return nil
}

func (r *JourneyRepository) Update(ctx context.Context, m *models.JourneyMilestone) (err error) {
	start := time.Now()
	defer func() { observe("updateMilestone", start, err) }()

	err = r.db.QueryRow(ctx, `
		UPDATE journey_milestones
		SET year = $2, title = $3, description = $4, display_order = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, m.ID, m.Year, m.Title, m.Description, m.DisplayOrder).Scan(&m.UpdatedAt)
	if err != nil {
		return notFound(err, "milestone")
	}
	return nil
}

func (r *JourneyRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "deleteMilestone", "journey_milestones", id)
}
