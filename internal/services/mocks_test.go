package services_test

import (
	"context"
	"io"
	"strings"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"github.com/stretchr/testify/mock"
)

// MockProjectStore is a mock implementation of repository.ProjectStore
type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectStore) GetByID(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectStore) Create(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectStore) Update(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectStore) ToggleFeatured(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectStore) Stats(ctx context.Context) (*models.ProjectStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectStats), args.Error(1)
}

// MockSkillStore is a mock implementation of repository.SkillStore
type MockSkillStore struct {
	mock.Mock
}

func (m *MockSkillStore) List(ctx context.Context, activeOnly bool) ([]*models.Skill, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Skill), args.Error(1)
}

func (m *MockSkillStore) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillStore) Create(ctx context.Context, skill *models.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillStore) Update(ctx context.Context, skill *models.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillStore) ToggleActive(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

// MockJourneyStore is a mock implementation of repository.JourneyStore
type MockJourneyStore struct {
	mock.Mock
}

func (m *MockJourneyStore) List(ctx context.Context) ([]*models.JourneyMilestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JourneyMilestone), args.Error(1)
}

func (m *MockJourneyStore) GetByID(ctx context.Context, id string) (*models.JourneyMilestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyMilestone), args.Error(1)
}

func (m *MockJourneyStore) Create(ctx context.Context, milestone *models.JourneyMilestone) error {
	return m.Called(ctx, milestone).Error(0)
}

func (m *MockJourneyStore) Update(ctx context.Context, milestone *models.JourneyMilestone) error {
	return m.Called(ctx, milestone).Error(0)
}

func (m *MockJourneyStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockHighlightStore is a mock implementation of repository.HighlightStore
type MockHighlightStore struct {
	mock.Mock
}

func (m *MockHighlightStore) List(ctx context.Context, activeOnly bool) ([]*models.PortfolioHighlight, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PortfolioHighlight), args.Error(1)
}

func (m *MockHighlightStore) GetByID(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioHighlight), args.Error(1)
}

func (m *MockHighlightStore) Create(ctx context.Context, highlight *models.PortfolioHighlight) error {
	return m.Called(ctx, highlight).Error(0)
}

func (m *MockHighlightStore) Update(ctx context.Context, highlight *models.PortfolioHighlight) error {
	return m.Called(ctx, highlight).Error(0)
}

func (m *MockHighlightStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHighlightStore) ToggleActive(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioHighlight), args.Error(1)
}

func (m *MockHighlightStore) ToggleFeatured(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioHighlight), args.Error(1)
}

// MockResumeStore is a mock implementation of repository.ResumeStore
type MockResumeStore struct {
	mock.Mock
}

func (m *MockResumeStore) List(ctx context.Context, publicOnly bool) ([]*models.Resume, error) {
	args := m.Called(ctx, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resume), args.Error(1)
}

func (m *MockResumeStore) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeStore) GetActivePublic(ctx context.Context) (*models.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeStore) Create(ctx context.Context, resume *models.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeStore) Update(ctx context.Context, resume *models.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeStore) Delete(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeStore) ToggleActive(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeStore) TogglePublic(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeStore) IncrementDownloads(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockMessageStore is a mock implementation of repository.MessageStore
type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) List(ctx context.Context, filter models.MessageFilter) ([]*models.ContactMessage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactMessage), args.Error(1)
}

func (m *MockMessageStore) Create(ctx context.Context, msg *models.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageStore) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockMessageStore) ToggleRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockMessageStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockAdminStore is a mock implementation of repository.AdminStore
type MockAdminStore struct {
	mock.Mock
}

func (m *MockAdminStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminStore) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminStore) CreateIfMissing(ctx context.Context, admin *models.Admin) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminStore) UpdateLastLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockObjectStorage is a mock implementation of services.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) GetObject(ctx context.Context, key string) (*storage.Object, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockObjectStorage) KeyFromURL(rawURL string) (string, bool) {
	args := m.Called(rawURL)
	return args.String(0), args.Bool(1)
}

// MockInvalidator counts cache flushes
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate() {
	m.Called()
}

func (m *MockInvalidator) Delete(keys ...string) {
	m.Called(keys)
}

func textBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// MockStatsStore is a mock implementation of repository.StatsStore
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) Statistics(ctx context.Context, recent int) (*models.Statistics, error) {
	args := m.Called(ctx, recent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}
