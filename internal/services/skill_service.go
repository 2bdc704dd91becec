package services

import (
	"context"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/errors"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
)

// SkillService gerencia o catálogo de skills
type SkillService struct {
	skillRepo repositories.SkillRepository
	logger    ports.Logger
}

// NewSkillService cria um novo SkillService
func NewSkillService(skillRepo repositories.SkillRepository, logger ports.Logger) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

// ListSkills lista o catálogo completo
func (s *SkillService) ListSkills(ctx context.Context) ([]*entities.Skill, error) {
	return s.skillRepo.List(ctx)
}

// CreateSkill adiciona uma skill ao catálogo (admin)
func (s *SkillService) CreateSkill(ctx context.Context, name string) (*entities.Skill, error) {
	skill := &entities.Skill{
		Name: entities.NormalizeSkillName(name),
	}

	if err := skill.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.skillRepo.FindByName(ctx, skill.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrSkillAlreadyExists
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	s.logger.Info("skill created", "skill", skill.Name)
	return skill, nil
}
