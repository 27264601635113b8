package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"go.uber.org/zap"
)

const highlightColumns = `id, title, description, short_description, images, project_url, tools, category,
	display_order, is_active, featured, completion_date, client_name, project_duration, created_at, updated_at`

type HighlightRepository struct {
	db DB
}

func NewHighlightRepository(db DB) *HighlightRepository {
	return &HighlightRepository{db: db}
}

func scanHighlight(row rowScanner) (*models.PortfolioHighlight, error) {
	var h models.PortfolioHighlight
	var category string
	var completion *time.Time
	if err := row.Scan(
		&h.ID, &h.Title, &h.Description, &h.ShortDescription, &h.Images, &h.ProjectURL, &h.Tools, &category,
		&h.DisplayOrder, &h.IsActive, &h.Featured, &completion, &h.ClientName, &h.ProjectDuration,
		&h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	h.Category = models.HighlightCategory(category)
	h.CompletionDate = dateFrom(completion)
	h.Tools = nonNil(h.Tools)
	h.Images = models.NormalizeImages(h.Images)
	return &h, nil
}

// List returns highlights ordered by displayOrder, newest first within a slot
func (r *HighlightRepository) List(ctx context.Context, activeOnly bool) (highlights []*models.PortfolioHighlight, err error) {
	start := time.Now()
	defer func() { observe("listHighlights", start, err, zap.Int("count", len(highlights))) }()

	query := "SELECT " + highlightColumns + " FROM highlights"
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY display_order ASC, created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query highlights: %w", err)
	}
	highlights, err = collect(rows, scanHighlight)
	if err != nil {
		return nil, fmt.Errorf("failed to scan highlight row: %w", err)
	}
	return highlights, nil
}

func (r *HighlightRepository) GetByID(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	return getByID(ctx, r.db, "getHighlight", "highlight", "highlights", highlightColumns, id, scanHighlight)
}

func (r *HighlightRepository) Create(ctx context.Context, h *models.PortfolioHighlight) (err error) {
	start := time.Now()
	defer func() { observe("createHighlight", start, err) }()

	h.ID = newID()
	h.Images = models.NormalizeImages(h.Images)
	query := `
		INSERT INTO highlights (id, title, description, short_description, images, project_url, tools,
			category, display_order, is_active, featured, completion_date, client_name, project_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		h.ID, h.Title, h.Description, h.ShortDescription, h.Images, h.ProjectURL, nonNil(h.Tools),
		string(h.Category), h.DisplayOrder, h.IsActive, h.Featured, dateArg(h.CompletionDate),
		h.ClientName, h.ProjectDuration,
	).Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert highlight: %w", err)
	}
	return nil
}

func (r *HighlightRepository) Update(ctx context.Context, h *models.PortfolioHighlight) (err error) {
	start := time.Now()
	defer func() { observe("updateHighlight", start, err) }()

	h.Images = models.NormalizeImages(h.Images)
	query := `
		UPDATE highlights
		SET title = $2, description = $3, short_description = $4, images = $5, project_url = $6,
			tools = $7, category = $8, display_order = $9, is_active = $10, featured = $11,
			completion_date = $12, client_name = $13, project_duration = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query,
		h.ID, h.Title, h.Description, h.ShortDescription, h.Images, h.ProjectURL, nonNil(h.Tools),
		string(h.Category), h.DisplayOrder, h.IsActive, h.Featured, dateArg(h.CompletionDate),
		h.ClientName, h.ProjectDuration,
	).Scan(&h.UpdatedAt)
	if err != nil {
		return notFound(err, "highlight")
	}
	return nil
}

func (r *HighlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "deleteHighlight", "highlights", id)
}

func (r *HighlightRepository) ToggleActive(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	return updateReturning(ctx, r.db, "toggleHighlightActive", "highlight", "highlights",
		"is_active = NOT is_active, updated_at = NOW()", highlightColumns, id, scanHighlight)
}

func (r *HighlightRepository) ToggleFeatured(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	return updateReturning(ctx, r.db, "toggleHighlightFeatured", "highlight", "highlights",
		"featured = NOT featured, updated_at = NOW()", highlightColumns, id, scanHighlight)
}
