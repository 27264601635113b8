package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const resourceProjects = "projects"

// ProjectService manages portfolio projects from the admin dashboard
type ProjectService struct {
	repo  repository.ProjectStore
	cache CacheInvalidator
}

func NewProjectService(repo repository.ProjectStore, cache CacheInvalidator) *ProjectService {
	return &ProjectService{repo: repo, cache: invalidatorOrNoop(cache)}
}

func (s *ProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int, error) {
	return s.repo.List(ctx, filter.Normalize())
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (project *models.Project, err error) {
	defer func() { afterWrite(s.cache, resourceProjects, "create", err) }()

	project = req.ToProject()
	if err = s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies the set fields of req. Concurrent edits are last write wins.
func (s *ProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (project *models.Project, err error) {
	defer func() { afterWrite(s.cache, resourceProjects, "update", err) }()

	project, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(project)
	if err = s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project. Deleting an absent id succeeds.
func (s *ProjectService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceProjects, "delete", err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Info("Project already absent on delete", zap.String("project_id", id))
	}
	return nil
}

func (s *ProjectService) ToggleFeatured(ctx context.Context, id string) (project *models.Project, err error) {
	defer func() { afterWrite(s.cache, resourceProjects, "toggle_featured", err) }()
	return s.repo.ToggleFeatured(ctx, id)
}

func (s *ProjectService) Stats(ctx context.Context) (*models.ProjectStats, error) {
	return s.repo.Stats(ctx)
}
