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

// BoardRepository implementa repositories.BoardRepository
type BoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository cria um novo BoardRepository
func NewBoardRepository(db *gorm.DB) repositories.BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *entities.Board) error {
	model := boardToModel(board)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Omit("Members").Create(model).Error; err != nil {
		return err
	}

	board.ID = model.ID

	if len(model.Members) > 0 {
		return db.Model(model).Association("Members").Append(model.Members)
	}
	return nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*entities.Board, error) {
	var model BoardModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Members").Where("id = ? AND deleted_at IS NULL", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return boardToEntity(&model)
}

func (r *BoardRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Board, error) {
	var models []*BoardModel

	db := r.getDB(ctx)
	// Boards onde o usuário é dono ou membro
	err := db.Preload("Members").
		Where("deleted_at IS NULL").
		Where("owner_id = ? OR id IN (SELECT board_id FROM board_members WHERE user_id = ?)", userID, userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	boards := make([]*entities.Board, 0, len(models))
	for _, model := range models {
		board, err := boardToEntity(model)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *entities.Board) error {
	model := boardToModel(board)

	db := r.getDB(ctx)
	return db.Omit("Members").Save(model).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&BoardModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *BoardRepository) AddMembers(ctx context.Context, boardID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	members := make([]UserModel, len(userIDs))
	for i, id := range userIDs {
		members[i] = UserModel{ID: id}
	}

	db := r.getDB(ctx)
	return db.Model(&BoardModel{ID: boardID}).Association("Members").Append(members)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *BoardRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func boardToModel(board *entities.Board) *BoardModel {
	var deletedAt *int64
	if board.DeletedAt != nil {
		ts := board.DeletedAt.Unix()
		deletedAt = &ts
	}

	members := make([]UserModel, len(board.Members))
	for i, m := range board.Members {
		members[i] = UserModel{ID: m.ID}
	}

	// Zero deixa o autoCreateTime/autoUpdateTime do GORM preencher
	var createdAt, updatedAt int64
	if !board.CreatedAt.IsZero() {
		createdAt = board.CreatedAt.Unix()
	}
	if !board.UpdatedAt.IsZero() {
		updatedAt = board.UpdatedAt.Unix()
	}

	return &BoardModel{
		ID:          board.ID,
		Name:        board.Name,
		Description: board.Description,
		OwnerID:     board.OwnerID,
		Members:     members,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func boardToEntity(model *BoardModel) (*entities.Board, error) {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	members := make([]entities.User, 0, len(model.Members))
	for _, m := range model.Members {
		member, err := userToEntity(&m)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}

	return &entities.Board{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		OwnerID:     model.OwnerID,
		Members:     members,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   deletedAt,
	}, nil
}
