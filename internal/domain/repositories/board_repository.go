package repositories

import (
	"context"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// BoardRepository define a interface para persistência de boards (workspaces)
type BoardRepository interface {
	Create(ctx context.Context, board *entities.Board) error
	FindByID(ctx context.Context, id string) (*entities.Board, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Board, error)
	Update(ctx context.Context, board *entities.Board) error
	Delete(ctx context.Context, id string) error
	AddMembers(ctx context.Context, boardID string, userIDs []string) error
}
