package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const resourceHighlights = "highlights"

// HighlightService manages design portfolio highlights
type HighlightService struct {
	repo  repository.HighlightStore
	cache CacheInvalidator
}

func NewHighlightService(repo repository.HighlightStore, cache CacheInvalidator) *HighlightService {
	return &HighlightService{repo: repo, cache: invalidatorOrNoop(cache)}
}

func (s *HighlightService) List(ctx context.Context) ([]*models.PortfolioHighlight, error) {
	return s.repo.List(ctx, false)
}

func (s *HighlightService) Create(ctx context.Context, req *models.CreateHighlightRequest) (highlight *models.PortfolioHighlight, err error) {
	defer func() { afterWrite(s.cache, resourceHighlights, "create", err) }()

	highlight = req.ToHighlight()
	if err = s.repo.Create(ctx, highlight); err != nil {
		return nil, err
	}
	return highlight, nil
}

func (s *HighlightService) Update(ctx context.Context, id string, req *models.UpdateHighlightRequest) (highlight *models.PortfolioHighlight, err error) {
	defer func() { afterWrite(s.cache, resourceHighlights, "update", err) }()

	highlight, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(highlight)
	if err = s.repo.Update(ctx, highlight); err != nil {
		return nil, err
	}
	return highlight, nil
}

func (s *HighlightService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceHighlights, "delete", err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Info("Highlight already absent on delete", zap.String("highlight_id", id))
	}
	return nil
}

func (s *HighlightService) ToggleActive(ctx context.Context, id string) (highlight *models.PortfolioHighlight, err error) {
	defer func() { afterWrite(s.cache, resourceHighlights, "toggle_active", err) }()
	return s.repo.ToggleActive(ctx, id)
}

func (s *HighlightService) ToggleFeatured(ctx context.Context, id string) (highlight *models.PortfolioHighlight, err error) {
	defer func() { afterWrite(s.cache, resourceHighlights, "toggle_featured", err) }()
	return s.repo.ToggleFeatured(ctx, id)
}
