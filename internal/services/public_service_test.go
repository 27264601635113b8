package services_test

import (
	"context"
	"testing"

	"github.com/devportfolio/portfolio-api/internal/cache"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicFixture struct {
	projects   *MockProjectStore
	skills     *MockSkillStore
	journey    *MockJourneyStore
	highlights *MockHighlightStore
	resumes    *MockResumeStore
	cache      *cache.PublicCache
	svc        *services.PublicService
}

func newPublicFixture() *publicFixture {
	f := &publicFixture{
		projects:   new(MockProjectStore),
		skills:     new(MockSkillStore),
		journey:    new(MockJourneyStore),
		highlights: new(MockHighlightStore),
		resumes:    new(MockResumeStore),
		cache:      cache.NewPublicCache(60),
	}
	f.svc = services.NewPublicService(f.projects, f.skills, f.journey, f.highlights, f.resumes, f.cache)
	return f
}

func TestPublicService_ProjectsCachedAndFiltered(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	all := []*models.Project{
		{ID: "1", Category: models.ProjectCategoryWeb, Featured: true},
		{ID: "2", Category: models.ProjectCategoryUI},
		{ID: "3", Category: models.ProjectCategoryWeb},
	}
	f.projects.On("List", mock.Anything, models.ProjectFilter{}).Return(all, 3, nil).Once()

	web, err := f.svc.Projects(ctx, models.ProjectFilter{Category: "Web"})
	require.NoError(t, err)
	assert.Len(t, web, 2)

	featured, err := f.svc.Projects(ctx, models.ProjectFilter{Featured: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "1", featured[0].ID)

	everything, err := f.svc.Projects(ctx, models.ProjectFilter{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, everything, 3)

	f.projects.AssertNumberOfCalls(t, "List", 1)
}

func TestPublicService_InvalidateReloads(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	f.skills.On("List", mock.Anything, true).Return([]*models.Skill{{ID: "s1"}}, nil).Twice()

	_, err := f.svc.Skills(ctx)
	require.NoError(t, err)
	f.cache.Invalidate()
	_, err = f.svc.Skills(ctx)
	require.NoError(t, err)

	f.skills.AssertNumberOfCalls(t, "List", 2)
}

func TestPublicService_ActiveResumeMissing(t *testing.T) {
	f := newPublicFixture()

	f.resumes.On("GetActivePublic", mock.Anything).Return(nil, apperrors.NotFoundError("active resume")).Twice()

	_, err := f.svc.ActiveResume(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.svc.ActiveResume(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	f.resumes.AssertNumberOfCalls(t, "GetActivePublic", 2)
}

func TestPublicService_Warm(t *testing.T) {
	f := newPublicFixture()

	f.projects.On("List", mock.Anything, models.ProjectFilter{}).Return([]*models.Project{}, 0, nil).Once()
	f.skills.On("List", mock.Anything, true).Return([]*models.Skill{}, nil).Once()
	f.journey.On("List", mock.Anything).Return([]*models.JourneyMilestone{}, nil).Once()
	f.highlights.On("List", mock.Anything, true).Return([]*models.PortfolioHighlight{}, nil).Once()

	require.NoError(t, f.cache.Initialize(context.Background(), f.svc.Warm))
	assert.True(t, f.cache.IsReady())
	assert.Equal(t, 4, f.cache.Len())
}

func TestStatsService_UsesRecentLimit(t *testing.T) {
	repo := new(MockStatsStore)
	svc := services.NewStatsService(repo)

	repo.On("Statistics", mock.Anything, 10).Return(&models.Statistics{TotalProjects: 4}, nil).Once()

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalProjects)
}
