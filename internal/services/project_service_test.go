package services_test

import (
	"context"
	"testing"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateInvalidatesCache(t *testing.T) {
	repo := new(MockProjectStore)
	inv := new(MockInvalidator)
	svc := services.NewProjectService(repo, inv)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
		return p.Title == "Portfolio" && p.Category == models.ProjectCategoryOther
	})).Return(nil).Once()
	inv.On("Invalidate").Once()

	project, err := svc.Create(context.Background(), &models.CreateProjectRequest{Title: "Portfolio", Description: "Site"})
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", project.Title)
	assert.NotNil(t, project.Technologies)

	repo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestProjectService_CreateFailureKeepsCache(t *testing.T) {
	repo := new(MockProjectStore)
	inv := new(MockInvalidator)
	svc := services.NewProjectService(repo, inv)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.Create(context.Background(), &models.CreateProjectRequest{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, assert.AnError)
	inv.AssertNotCalled(t, "Invalidate")
}

func TestProjectService_UpdateAppliesFields(t *testing.T) {
	repo := new(MockProjectStore)
	svc := services.NewProjectService(repo, nil)
	ctx := context.Background()

	existing := &models.Project{ID: "p1", Title: "Old", Description: "Keep", Category: models.ProjectCategoryWeb}
	repo.On("GetByID", ctx, "p1").Return(existing, nil).Once()
	repo.On("Update", ctx, existing).Return(nil).Once()

	project, err := svc.Update(ctx, "p1", &models.UpdateProjectRequest{Title: strPtr("New"), Featured: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "New", project.Title)
	assert.Equal(t, "Keep", project.Description)
	assert.True(t, project.Featured)
	repo.AssertExpectations(t)
}

func TestProjectService_UpdateMissing(t *testing.T) {
	repo := new(MockProjectStore)
	svc := services.NewProjectService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, "nope").Return(nil, apperrors.NotFoundError("project")).Once()

	_, err := svc.Update(ctx, "nope", &models.UpdateProjectRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_DeleteAbsentSucceeds(t *testing.T) {
	repo := new(MockProjectStore)
	inv := new(MockInvalidator)
	svc := services.NewProjectService(repo, inv)
	ctx := context.Background()

	repo.On("Delete", ctx, "gone").Return(false, nil).Once()
	inv.On("Invalidate").Once()

	assert.NoError(t, svc.Delete(ctx, "gone"))
	inv.AssertExpectations(t)
}

func TestProjectService_ListNormalizesFilter(t *testing.T) {
	repo := new(MockProjectStore)
	svc := services.NewProjectService(repo, nil)
	ctx := context.Background()

	repo.On("List", ctx, models.ProjectFilter{Page: 1, Limit: 100}).Return([]*models.Project{}, 0, nil).Once()

	projects, total, err := svc.List(ctx, models.ProjectFilter{Category: "All", Limit: 500})
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Zero(t, total)
	repo.AssertExpectations(t)
}
