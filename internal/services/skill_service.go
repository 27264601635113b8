package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const resourceSkills = "skills"

// SkillService manages the skills page. Icons are checked against the catalog on every write.
type SkillService struct {
	repo  repository.SkillStore
	cache CacheInvalidator
}

func NewSkillService(repo repository.SkillStore, cache CacheInvalidator) *SkillService {
	return &SkillService{repo: repo, cache: invalidatorOrNoop(cache)}
}

func (s *SkillService) List(ctx context.Context) ([]*models.Skill, error) {
	return s.repo.List(ctx, false)
}

func (s *SkillService) Create(ctx context.Context, req *models.CreateSkillRequest) (skill *models.Skill, err error) {
	defer func() { afterWrite(s.cache, resourceSkills, "create", err) }()

	skill = req.ToSkill()
	if err = skill.Validate(); err != nil {
		return nil, err
	}
	if err = s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id string, req *models.UpdateSkillRequest) (skill *models.Skill, err error) {
	defer func() { afterWrite(s.cache, resourceSkills, "update", err) }()

	skill, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(skill)
	if err = skill.Validate(); err != nil {
		return nil, err
	}
	if err = s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceSkills, "delete", err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Info("Skill already absent on delete", zap.String("skill_id", id))
	}
	return nil
}

func (s *SkillService) ToggleActive(ctx context.Context, id string) (skill *models.Skill, err error) {
	defer func() { afterWrite(s.cache, resourceSkills, "toggle_active", err) }()
	return s.repo.ToggleActive(ctx, id)
}
