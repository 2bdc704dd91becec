package entities

import (
	"errors"
	"strings"
	"time"
)

// Board representa um workspace de colaboração pertencente a um usuário
type Board struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	Members     []User
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// IsOwner verifica se o usuário é o dono do board
func (b *Board) IsOwner(userID string) bool {
	return b.OwnerID == userID
}

// IsMember verifica se o usuário participa do board.
// O dono é sempre considerado membro.
func (b *Board) IsMember(userID string) bool {
	if b.IsOwner(userID) {
		return true
	}
	for _, m := range b.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// HasMember verifica se o usuário já está na lista de membros
func (b *Board) HasMember(userID string) bool {
	for _, m := range b.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// IsDeleted verifica se o board foi deletado (soft delete)
func (b *Board) IsDeleted() bool {
	return b.DeletedAt != nil
}

// SoftDelete marca o board como deletado
func (b *Board) SoftDelete() {
	now := time.Now()
	b.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Board
func (b *Board) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("board name is required")
	}

	if len(b.Name) > 200 {
		return errors.New("board name must be at most 200 characters")
	}

	if b.OwnerID == "" {
		return errors.New("board owner is required")
	}

	return nil
}
