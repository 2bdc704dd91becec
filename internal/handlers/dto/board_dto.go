package dto

import (
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// CreateBoardRequest representa a requisição de criação de board (workspace)
type CreateBoardRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=200"`
	Description  string   `json:"description" binding:"omitempty,max=2000"`
	InviteEmails []string `json:"inviteEmails" binding:"omitempty,max=50"`
}

// UpdateBoardRequest representa a requisição de atualização de board
type UpdateBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// InviteMembersRequest representa a requisição de convite de membros
type InviteMembersRequest struct {
	Emails []string `json:"emails" binding:"required,min=1,max=50"`
}

// BoardResponse representa a resposta de um board
type BoardResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	OwnerID     string         `json:"ownerId"`
	Members     []UserResponse `json:"members"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// BoardInviteResponse representa o resultado de um convite:
// o board, quem entrou e quais emails não correspondem a usuários
type BoardInviteResponse struct {
	Board         BoardResponse  `json:"board"`
	Invited       []UserResponse `json:"invited"`
	UnknownEmails []string       `json:"unknownEmails"`
}

// ToBoardResponse converte uma entidade Board para BoardResponse
func ToBoardResponse(board *entities.Board) BoardResponse {
	members := make([]UserResponse, len(board.Members))
	for i := range board.Members {
		members[i] = ToUserResponse(&board.Members[i])
	}

	return BoardResponse{
		ID:          board.ID,
		Name:        board.Name,
		Description: board.Description,
		OwnerID:     board.OwnerID,
		Members:     members,
		CreatedAt:   board.CreatedAt,
	}
}

// ToBoardResponses converte uma lista de entidades Board
func ToBoardResponses(boards []*entities.Board) []BoardResponse {
	responses := make([]BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = ToBoardResponse(board)
	}
	return responses
}

// ToBoardInviteResponse monta a resposta de convite
func ToBoardInviteResponse(board *entities.Board, outcome *services.InviteOutcome) BoardInviteResponse {
	response := BoardInviteResponse{
		Board:         ToBoardResponse(board),
		Invited:       ToUserResponses(outcome.Invited),
		UnknownEmails: outcome.UnknownEmails,
	}
	if response.UnknownEmails == nil {
		response.UnknownEmails = []string{}
	}
	return response
}
