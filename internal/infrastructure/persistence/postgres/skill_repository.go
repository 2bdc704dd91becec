package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
)

// SkillRepository implementa repositories.SkillRepository
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository cria um novo SkillRepository
func NewSkillRepository(db *gorm.DB) repositories.SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	model := &SkillModel{
		ID:   skill.ID,
		Name: skill.Name,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	skill.ID = model.ID
	skill.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*entities.Skill, error) {
	var model SkillModel

	db := r.getDB(ctx)
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SkillRepository) FindByNames(ctx context.Context, names []string) ([]*entities.Skill, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var models []*SkillModel

	db := r.getDB(ctx)
	if err := db.Where("name IN ?", names).Find(&models).Error; err != nil {
		return nil, err
	}

	skills := make([]*entities.Skill, len(models))
	for i, m := range models {
		skills[i] = r.toEntity(m)
	}
	return skills, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]*entities.Skill, error) {
	var models []*SkillModel

	db := r.getDB(ctx)
	if err := db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	skills := make([]*entities.Skill, len(models))
	for i, m := range models {
		skills[i] = r.toEntity(m)
	}
	return skills, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *SkillRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *SkillRepository) toEntity(model *SkillModel) *entities.Skill {
	return &entities.Skill{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
