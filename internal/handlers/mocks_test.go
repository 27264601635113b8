package handlers

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/devportfolio/portfolio-api/pkg/jwt"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*jwt.AdminClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.AdminClaims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *jwt.AdminClaims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectService) ToggleFeatured(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Stats(ctx context.Context) (*models.ProjectStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectStats), args.Error(1)
}

type MockPublicService struct {
	mock.Mock
}

func (m *MockPublicService) Projects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockPublicService) Project(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockPublicService) Skills(ctx context.Context) ([]*models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Skill), args.Error(1)
}

func (m *MockPublicService) Journey(ctx context.Context) ([]*models.JourneyMilestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JourneyMilestone), args.Error(1)
}

func (m *MockPublicService) Highlights(ctx context.Context) ([]*models.PortfolioHighlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PortfolioHighlight), args.Error(1)
}

func (m *MockPublicService) ActiveResume(ctx context.Context) (*models.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockPublicService) PublicResumes(ctx context.Context) ([]*models.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resume), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) List(ctx context.Context) ([]*models.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resume), args.Error(1)
}

func (m *MockResumeService) Get(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeService) Upload(ctx context.Context, form *models.ResumeUploadForm, file *services.UploadedFile) (*models.Resume, error) {
	args := m.Called(ctx, form, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeService) Update(ctx context.Context, id string, req *models.UpdateResumeRequest) (*models.Resume, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResumeService) ToggleActive(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeService) TogglePublic(ctx context.Context, id string) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeService) Download(ctx context.Context, id string) (*services.ResumeDownload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ResumeDownload), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, file *services.UploadedFile) (*models.UploadedImage, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedImage), args.Error(1)
}

func (m *MockUploadService) DeleteImage(ctx context.Context, imageURL string) error {
	return m.Called(ctx, imageURL).Error(0)
}

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) List(ctx context.Context, filter models.MessageFilter) ([]*models.ContactMessage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactMessage), args.Error(1)
}

func (m *MockMessageService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockMessageService) ToggleRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockMessageService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ services.AuthServiceInterface    = (*MockAuthService)(nil)
	_ services.ProjectServiceInterface = (*MockProjectService)(nil)
	_ services.PublicServiceInterface  = (*MockPublicService)(nil)
	_ services.ContactServiceInterface = (*MockContactService)(nil)
	_ services.ResumeServiceInterface  = (*MockResumeService)(nil)
	_ services.UploadServiceInterface  = (*MockUploadService)(nil)
	_ services.MessageServiceInterface = (*MockMessageService)(nil)
)
