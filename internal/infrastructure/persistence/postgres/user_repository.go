package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Skills").Where("id = ? AND deleted_at IS NULL", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Skills").Where("email = ? AND deleted_at IS NULL", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	err := db.Preload("Skills").Where("username = ? AND deleted_at IS NULL", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) FindByEmails(ctx context.Context, emails []string) ([]*entities.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	var models []*UserModel

	db := r.getDB(ctx)
	err := db.Preload("Skills").Where("email IN ? AND deleted_at IS NULL", emails).Find(&models).Error
	if err != nil {
		return nil, err
	}

	return userToEntities(models)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	db := r.getDB(ctx)
	if err := db.Omit("Skills").Save(model).Error; err != nil {
		return err
	}

	// Skills são um set: substituir associações pelo estado da entidade
	return db.Model(model).Association("Skills").Replace(model.Skills)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&UserModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel
	var total int64

	db := r.getDB(ctx)
	query := db.Model(&UserModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("full_name LIKE ? OR username LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Preload("Skills").Limit(pageSize).Offset(offset).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users, err := userToEntities(models)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	var workStart, workEnd *int64
	if user.WorkDuration.StartDate != nil {
		ts := user.WorkDuration.StartDate.Unix()
		workStart = &ts
	}
	if user.WorkDuration.EndDate != nil {
		ts := user.WorkDuration.EndDate.Unix()
		workEnd = &ts
	}

	skills := make([]SkillModel, len(user.Skills))
	for i, s := range user.Skills {
		skills[i] = SkillModel{
			ID:   s.ID,
			Name: s.Name,
		}
	}

	// Zero deixa o autoCreateTime/autoUpdateTime do GORM preencher
	var createdAt, updatedAt int64
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		updatedAt = user.UpdatedAt.Unix()
	}

	return &UserModel{
		ID:                user.ID,
		FullName:          user.FullName,
		Username:          user.Username,
		Email:             user.Email.String(),
		PasswordHash:      user.PasswordHash,
		Role:              string(user.Role),
		AvatarURL:         user.AvatarURL,
		About:             user.About,
		Experience:        user.Experience,
		YearsOfExperience: user.YearsOfExperience,
		Availability:      string(user.Availability),
		WorkStartDate:     workStart,
		WorkEndDate:       workEnd,
		GoogleID:          user.GoogleID,
		Skills:            skills,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	var workDuration entities.WorkDuration
	if model.WorkStartDate != nil {
		ts := time.Unix(*model.WorkStartDate, 0)
		workDuration.StartDate = &ts
	}
	if model.WorkEndDate != nil {
		ts := time.Unix(*model.WorkEndDate, 0)
		workDuration.EndDate = &ts
	}

	skills := make([]entities.Skill, len(model.Skills))
	for i, s := range model.Skills {
		skills[i] = entities.Skill{
			ID:        s.ID,
			Name:      s.Name,
			CreatedAt: time.Unix(s.CreatedAt, 0),
		}
	}

	return &entities.User{
		ID:                model.ID,
		FullName:          model.FullName,
		Username:          model.Username,
		Email:             email,
		PasswordHash:      model.PasswordHash,
		Role:              entities.Role(model.Role),
		AvatarURL:         model.AvatarURL,
		Skills:            skills,
		About:             model.About,
		Experience:        model.Experience,
		YearsOfExperience: model.YearsOfExperience,
		Availability:      entities.Availability(model.Availability),
		WorkDuration:      workDuration,
		GoogleID:          model.GoogleID,
		CreatedAt:         time.Unix(model.CreatedAt, 0),
		UpdatedAt:         time.Unix(model.UpdatedAt, 0),
		DeletedAt:         deletedAt,
	}, nil
}

func userToEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := userToEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
