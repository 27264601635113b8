package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
)

const resourceJourney = "journey"

type JourneyService struct {
	repo  repository.JourneyStore
	cache CacheInvalidator
}

func NewJourneyService(repo repository.JourneyStore, cache CacheInvalidator) *JourneyService {
	return &JourneyService{repo: repo, cache: invalidatorOrNoop(cache)}
}

func (s *JourneyService) List(ctx context.Context) ([]*models.JourneyMilestone, error) {
	return s.repo.List(ctx)
}

func (s *JourneyService) Create(ctx context.Context, req *models.CreateJourneyRequest) (milestone *models.JourneyMilestone, err error) {
	defer func() { afterWrite(s.cache, resourceJourney, "create", err) }()

	milestone = req.ToMilestone()
	if err = s.repo.Create(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *JourneyService) Update(ctx context.Context, id string, req *models.UpdateJourneyRequest) (milestone *models.JourneyMilestone, err error) {
	defer func() { afterWrite(s.cache, resourceJourney, "update", err) }()

	milestone, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(milestone)
	if err = s.repo.Update(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *JourneyService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceJourney, "delete", err) }()
	_, err = s.repo.Delete(ctx, id)
	return err
}
