package services

import (
	"context"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/errors"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

// BoardService contém a lógica de negócio para boards (workspaces)
type BoardService struct {
	boardRepo repositories.BoardRepository
	userRepo  repositories.UserRepository
	uow       ports.UnitOfWork
	notifier  ports.Notifier
	logger    ports.Logger
}

// NewBoardService cria um novo BoardService
func NewBoardService(
	boardRepo repositories.BoardRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		userRepo:  userRepo,
		uow:       uow,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateBoardInput representa os dados para criar um board
type CreateBoardInput struct {
	Name         string
	Description  string
	InviteEmails []string
}

// InviteOutcome carrega o resultado dos convites de um board:
// quem foi convidado e quais emails não correspondem a usuários.
type InviteOutcome struct {
	Invited       []*entities.User
	UnknownEmails []string
}

// CreateBoard cria um board pertencente ao caller e convida membros por
// email. Emails desconhecidos não são fatais: são devolvidos ao caller.
func (s *BoardService) CreateBoard(ctx context.Context, owner *entities.User, input CreateBoardInput) (*entities.Board, *InviteOutcome, error) {
	outcome, err := s.resolveInvites(ctx, owner, input.InviteEmails)
	if err != nil {
		return nil, nil, err
	}

	board := &entities.Board{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     owner.ID,
	}
	for _, member := range outcome.Invited {
		board.Members = append(board.Members, *member)
	}

	if err := board.Validate(); err != nil {
		return nil, nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.boardRepo.Create(txCtx, board)
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyInvites(owner, board, outcome.Invited)

	s.logger.Info("board created",
		"board_id", board.ID,
		"owner_id", owner.ID,
		"members", len(board.Members),
	)
	return board, outcome, nil
}

// GetBoard busca um board; apenas dono e membros podem ver
func (s *BoardService) GetBoard(ctx context.Context, userID, boardID string) (*entities.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.ErrBoardNotFound
	}

	if !board.IsMember(userID) {
		return nil, errors.ErrNotBoardMember
	}

	return board, nil
}

// ListBoards lista os boards dos quais o usuário participa
func (s *BoardService) ListBoards(ctx context.Context, userID string) ([]*entities.Board, error) {
	return s.boardRepo.ListByUser(ctx, userID)
}

// UpdateBoardInput representa os campos mutáveis de um board
type UpdateBoardInput struct {
	Name        *string
	Description *string
}

// UpdateBoard atualiza um board; somente o dono pode
func (s *BoardService) UpdateBoard(ctx context.Context, userID, boardID string, input UpdateBoardInput) (*entities.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.ErrBoardNotFound
	}

	if !board.IsOwner(userID) {
		return nil, errors.ErrNotBoardOwner
	}

	if input.Name != nil {
		board.Name = *input.Name
	}
	if input.Description != nil {
		board.Description = *input.Description
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}

	return board, nil
}

// DeleteBoard faz soft delete de um board; somente o dono pode
func (s *BoardService) DeleteBoard(ctx context.Context, userID, boardID string) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return errors.ErrBoardNotFound
	}

	if !board.IsOwner(userID) {
		return errors.ErrNotBoardOwner
	}

	s.logger.Info("board deleted", "board_id", boardID, "owner_id", userID)
	return s.boardRepo.Delete(ctx, boardID)
}

// InviteMembers adiciona membros a um board existente por email;
// somente o dono pode convidar. Membros atuais são ignorados.
func (s *BoardService) InviteMembers(ctx context.Context, caller *entities.User, boardID string, emails []string) (*InviteOutcome, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.ErrBoardNotFound
	}

	if !board.IsOwner(caller.ID) {
		return nil, errors.ErrNotBoardOwner
	}

	outcome, err := s.resolveInvites(ctx, caller, emails)
	if err != nil {
		return nil, err
	}

	newMembers := make([]*entities.User, 0, len(outcome.Invited))
	ids := make([]string, 0, len(outcome.Invited))
	for _, user := range outcome.Invited {
		if board.HasMember(user.ID) {
			continue
		}
		newMembers = append(newMembers, user)
		ids = append(ids, user.ID)
	}
	outcome.Invited = newMembers

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.boardRepo.AddMembers(txCtx, boardID, ids)
	})
	if err != nil {
		return nil, err
	}

	s.notifyInvites(caller, board, outcome.Invited)

	return outcome, nil
}

// resolveInvites valida sintaxe dos emails, rejeita auto-convite e
// particiona em usuários encontrados / emails desconhecidos
func (s *BoardService) resolveInvites(ctx context.Context, caller *entities.User, emails []string) (*InviteOutcome, error) {
	normalized := make([]string, 0, len(emails))
	seen := make(map[string]bool, len(emails))
	for _, raw := range emails {
		email, err := valueobjects.NewEmail(raw)
		if err != nil {
			return nil, &errors.InvalidEmail{Value: raw}
		}
		if email.Equals(caller.Email) {
			return nil, errors.ErrSelfInvite
		}
		if seen[email.String()] {
			continue
		}
		seen[email.String()] = true
		normalized = append(normalized, email.String())
	}

	users, err := s.userRepo.FindByEmails(ctx, normalized)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]*entities.User, len(users))
	for _, user := range users {
		byEmail[user.Email.String()] = user
	}

	outcome := &InviteOutcome{}
	for _, email := range normalized {
		if user, ok := byEmail[email]; ok {
			outcome.Invited = append(outcome.Invited, user)
		} else {
			outcome.UnknownEmails = append(outcome.UnknownEmails, email)
		}
	}

	return outcome, nil
}

// notifyInvites envia o evento de convite para cada membro convidado
func (s *BoardService) notifyInvites(inviter *entities.User, board *entities.Board, invited []*entities.User) {
	if s.notifier == nil {
		return
	}

	for _, user := range invited {
		s.notifier.Push(user.ID, ports.Notification{
			Type:    ports.NotificationBoardInvite,
			Message: inviter.FullName + " added you to " + board.Name,
			Payload: map[string]any{
				"board_id":   board.ID,
				"board_name": board.Name,
				"invited_by": inviter.Username,
			},
		})
	}
}
