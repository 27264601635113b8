package repository

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
)

// ProjectStore persists portfolio projects
type ProjectStore interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) (bool, error)
	ToggleFeatured(ctx context.Context, id string) (*models.Project, error)
	Stats(ctx context.Context) (*models.ProjectStats, error)
}

// SkillStore persists skills. activeOnly restricts listings to the public view.
type SkillStore interface {
	List(ctx context.Context, activeOnly bool) ([]*models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id string) (bool, error)
	ToggleActive(ctx context.Context, id string) (*models.Skill, error)
}

// JourneyStore persists timeline milestones
type JourneyStore interface {
	List(ctx context.Context) ([]*models.JourneyMilestone, error)
	GetByID(ctx context.Context, id string) (*models.JourneyMilestone, error)
	Create(ctx context.Context, milestone *models.JourneyMilestone) error
	Update(ctx context.Context, milestone *models.JourneyMilestone) error
	Delete(ctx context.Context, id string) (bool, error)
}

// HighlightStore persists design portfolio highlights
type HighlightStore interface {
	List(ctx context.Context, activeOnly bool) ([]*models.PortfolioHighlight, error)
	GetByID(ctx context.Context, id string) (*models.PortfolioHighlight, error)
	Create(ctx context.Context, highlight *models.PortfolioHighlight) error
	Update(ctx context.Context, highlight *models.PortfolioHighlight) error
	Delete(ctx context.Context, id string) (bool, error)
	ToggleActive(ctx context.Context, id string) (*models.PortfolioHighlight, error)
	ToggleFeatured(ctx context.Context, id string) (*models.PortfolioHighlight, error)
}

// ResumeStore persists resume metadata. File bodies live in object storage.
type ResumeStore interface {
	List(ctx context.Context, publicOnly bool) ([]*models.Resume, error)
	GetByID(ctx context.Context, id string) (*models.Resume, error)
	GetActivePublic(ctx context.Context) (*models.Resume, error)
	Create(ctx context.Context, resume *models.Resume) error
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id string) (*models.Resume, error)
	ToggleActive(ctx context.Context, id string) (*models.Resume, error)
	TogglePublic(ctx context.Context, id string) (*models.Resume, error)
	IncrementDownloads(ctx context.Context, id string) error
}

// MessageStore persists contact form submissions
type MessageStore interface {
	List(ctx context.Context, filter models.MessageFilter) ([]*models.ContactMessage, error)
	Create(ctx context.Context, msg *models.ContactMessage) error
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
	ToggleRead(ctx context.Context, id string) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AdminStore persists dashboard accounts
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	CreateIfMissing(ctx context.Context, admin *models.Admin) (bool, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// StatsStore aggregates dashboard numbers across every table
type StatsStore interface {
	Statistics(ctx context.Context, recent int) (*models.Statistics, error)
}

// Pinger reports database reachability for health checks
type Pinger interface {
	Ping(ctx context.Context) error
}
