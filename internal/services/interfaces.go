package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/jwt"
)

// AuthServiceInterface defines admin login and bearer token checks
type AuthServiceInterface interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*jwt.AdminClaims, error)
	Logout(ctx context.Context, claims *jwt.AdminClaims) error
	Profile(ctx context.Context, adminID string) (*models.Admin, error)
}

// ProjectServiceInterface defines admin project management
type ProjectServiceInterface interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (*models.Project, error)
	Stats(ctx context.Context) (*models.ProjectStats, error)
}

// SkillServiceInterface defines admin skill management
type SkillServiceInterface interface {
	List(ctx context.Context) ([]*models.Skill, error)
	Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id string, req *models.UpdateSkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Skill, error)
}

// JourneyServiceInterface defines admin timeline management
type JourneyServiceInterface interface {
	List(ctx context.Context) ([]*models.JourneyMilestone, error)
	Create(ctx context.Context, req *models.CreateJourneyRequest) (*models.JourneyMilestone, error)
	Update(ctx context.Context, id string, req *models.UpdateJourneyRequest) (*models.JourneyMilestone, error)
	Delete(ctx context.Context, id string) error
}

// HighlightServiceInterface defines admin highlight management
type HighlightServiceInterface interface {
	List(ctx context.Context) ([]*models.PortfolioHighlight, error)
	Create(ctx context.Context, req *models.CreateHighlightRequest) (*models.PortfolioHighlight, error)
	Update(ctx context.Context, id string, req *models.UpdateHighlightRequest) (*models.PortfolioHighlight, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.PortfolioHighlight, error)
	ToggleFeatured(ctx context.Context, id string) (*models.PortfolioHighlight, error)
}

// ResumeServiceInterface defines resume management and public downloads
type ResumeServiceInterface interface {
	List(ctx context.Context) ([]*models.Resume, error)
	Get(ctx context.Context, id string) (*models.Resume, error)
	Upload(ctx context.Context, form *models.ResumeUploadForm, file *UploadedFile) (*models.Resume, error)
	Update(ctx context.Context, id string, req *models.UpdateResumeRequest) (*models.Resume, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Resume, error)
	TogglePublic(ctx context.Context, id string) (*models.Resume, error)
	Download(ctx context.Context, id string) (*ResumeDownload, error)
}

// MessageServiceInterface defines the admin inbox
type MessageServiceInterface interface {
	List(ctx context.Context, filter models.MessageFilter) ([]*models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
	ToggleRead(ctx context.Context, id string) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// ContactServiceInterface defines public contact form submissions
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error)
}

// StatsServiceInterface defines the dashboard overview
type StatsServiceInterface interface {
	Statistics(ctx context.Context) (*models.Statistics, error)
}

// PublicServiceInterface defines the cached read-only views of the public site
type PublicServiceInterface interface {
	Projects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)
	Project(ctx context.Context, id string) (*models.Project, error)
	Skills(ctx context.Context) ([]*models.Skill, error)
	Journey(ctx context.Context) ([]*models.JourneyMilestone, error)
	Highlights(ctx context.Context) ([]*models.PortfolioHighlight, error)
	ActiveResume(ctx context.Context) (*models.Resume, error)
	PublicResumes(ctx context.Context) ([]*models.Resume, error)
}

// UploadServiceInterface defines image uploads for project and highlight media
type UploadServiceInterface interface {
	UploadImage(ctx context.Context, file *UploadedFile) (*models.UploadedImage, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

// Ensure services implement their interfaces
var _ AuthServiceInterface = (*AuthService)(nil)
var _ ProjectServiceInterface = (*ProjectService)(nil)
var _ SkillServiceInterface = (*SkillService)(nil)
var _ JourneyServiceInterface = (*JourneyService)(nil)
var _ HighlightServiceInterface = (*HighlightService)(nil)
var _ ResumeServiceInterface = (*ResumeService)(nil)
var _ MessageServiceInterface = (*MessageService)(nil)
var _ ContactServiceInterface = (*ContactService)(nil)
var _ StatsServiceInterface = (*StatsService)(nil)
var _ PublicServiceInterface = (*PublicService)(nil)
var _ UploadServiceInterface = (*UploadService)(nil)
