package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
)

const recentActivityLimit = 10

type StatsService struct {
	repo repository.StatsStore
}

func NewStatsService(repo repository.StatsStore) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Statistics(ctx context.Context) (*models.Statistics, error) {
	return s.repo.Statistics(ctx, recentActivityLimit)
}
