package repositories

import (
	"context"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// SkillRepository define a interface para persistência do catálogo de skills
type SkillRepository interface {
	Create(ctx context.Context, skill *entities.Skill) error
	FindByName(ctx context.Context, name string) (*entities.Skill, error)
	FindByNames(ctx context.Context, names []string) ([]*entities.Skill, error)
	List(ctx context.Context) ([]*entities.Skill, error)
}
