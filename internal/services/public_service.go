package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/cache"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

// PublicService serves the read-only views of the public site through the public cache
type PublicService struct {
	projects   repository.ProjectStore
	skills     repository.SkillStore
	journey    repository.JourneyStore
	highlights repository.HighlightStore
	resumes    repository.ResumeStore
	cache      *cache.PublicCache
}

func NewPublicService(
	projects repository.ProjectStore,
	skills repository.SkillStore,
	journey repository.JourneyStore,
	highlights repository.HighlightStore,
	resumes repository.ResumeStore,
	publicCache *cache.PublicCache,
) *PublicService {
	return &PublicService{
		projects:   projects,
		skills:     skills,
		journey:    journey,
		highlights: highlights,
		resumes:    resumes,
		cache:      publicCache,
	}
}

// Projects filters the cached project list in memory
func (s *PublicService) Projects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	all, err := cache.Load(ctx, s.cache, cache.PublicProjectsKey, func(ctx context.Context) ([]*models.Project, error) {
		projects, _, err := s.projects.List(ctx, models.ProjectFilter{})
		return projects, err
	})
	if err != nil {
		return nil, err
	}
	filter.Limit = 0
	projects, _ := filter.Apply(all)
	return projects, nil
}

func (s *PublicService) Project(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *PublicService) Skills(ctx context.Context) ([]*models.Skill, error) {
	return cache.Load(ctx, s.cache, cache.PublicSkillsKey, func(ctx context.Context) ([]*models.Skill, error) {
		return s.skills.List(ctx, true)
	})
}

func (s *PublicService) Journey(ctx context.Context) ([]*models.JourneyMilestone, error) {
	return cache.Load(ctx, s.cache, cache.PublicJourneyKey, s.journey.List)
}

func (s *PublicService) Highlights(ctx context.Context) ([]*models.PortfolioHighlight, error) {
	return cache.Load(ctx, s.cache, cache.PublicHighlightsKey, func(ctx context.Context) ([]*models.PortfolioHighlight, error) {
		return s.highlights.List(ctx, true)
	})
}

func (s *PublicService) ActiveResume(ctx context.Context) (*models.Resume, error) {
	return cache.Load(ctx, s.cache, cache.PublicActiveKey, s.resumes.GetActivePublic)
}

func (s *PublicService) PublicResumes(ctx context.Context) ([]*models.Resume, error) {
	return cache.Load(ctx, s.cache, cache.PublicResumesKey, func(ctx context.Context) ([]*models.Resume, error) {
		return s.resumes.List(ctx, true)
	})
}

// Warm fills the cache with the views every visitor loads
func (s *PublicService) Warm(ctx context.Context) error {
	if _, err := s.Projects(ctx, models.ProjectFilter{}); err != nil {
		return err
	}
	if _, err := s.Skills(ctx); err != nil {
		return err
	}
	if _, err := s.Journey(ctx); err != nil {
		return err
	}
	if _, err := s.Highlights(ctx); err != nil {
		return err
	}
	logger.Debug("Public views warmed", zap.Int("entries", s.cache.Len()))
	return nil
}
