package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
)

// Fakes em memória compartilhados pelos testes de services

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

type fakeUoW struct{}

func (fakeUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUoW) Commit(ctx context.Context) error                   { return nil }
func (fakeUoW) Rollback(ctx context.Context) error                 { return nil }
func (fakeUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeTokens struct{}

func (fakeTokens) Issue(user *entities.User) (string, error) {
	return "token-for-" + user.ID, nil
}

func (fakeTokens) Verify(token string) (*ports.TokenClaims, error) {
	userID, found := strings.CutPrefix(token, "token-for-")
	if !found {
		return nil, fmt.Errorf("invalid token")
	}
	return &ports.TokenClaims{UserID: userID}, nil
}

type fakeUserRepo struct {
	users  map[string]*entities.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted() {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email && !user.IsDeleted() {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username && !user.IsDeleted() {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmails(ctx context.Context, emails []string) ([]*entities.User, error) {
	var found []*entities.User
	for _, email := range emails {
		user, _ := r.FindByEmail(ctx, email)
		if user != nil {
			found = append(found, user)
		}
	}
	return found, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if user, ok := r.users[id]; ok {
		user.SoftDelete()
	}
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var users []*entities.User
	for _, user := range r.users {
		if user.IsDeleted() {
			continue
		}
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, int64(len(users)), nil
}

type fakeSkillRepo struct {
	skills map[string]*entities.Skill
}

func newFakeSkillRepo(names ...string) *fakeSkillRepo {
	repo := &fakeSkillRepo{skills: make(map[string]*entities.Skill)}
	for i, name := range names {
		repo.skills[name] = &entities.Skill{
			ID:   fmt.Sprintf("skill-%d", i+1),
			Name: name,
		}
	}
	return repo
}

func (r *fakeSkillRepo) Create(ctx context.Context, skill *entities.Skill) error {
	if skill.ID == "" {
		skill.ID = fmt.Sprintf("skill-%d", len(r.skills)+1)
	}
	copied := *skill
	r.skills[skill.Name] = &copied
	return nil
}

func (r *fakeSkillRepo) FindByName(ctx context.Context, name string) (*entities.Skill, error) {
	skill, ok := r.skills[name]
	if !ok {
		return nil, nil
	}
	copied := *skill
	return &copied, nil
}

func (r *fakeSkillRepo) FindByNames(ctx context.Context, names []string) ([]*entities.Skill, error) {
	var found []*entities.Skill
	for _, name := range names {
		if skill, ok := r.skills[name]; ok {
			copied := *skill
			found = append(found, &copied)
		}
	}
	return found, nil
}

func (r *fakeSkillRepo) List(ctx context.Context) ([]*entities.Skill, error) {
	var skills []*entities.Skill
	for _, skill := range r.skills {
		copied := *skill
		skills = append(skills, &copied)
	}
	return skills, nil
}

type fakeBoardRepo struct {
	boards map[string]*entities.Board
	nextID int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: make(map[string]*entities.Board)}
}

func (r *fakeBoardRepo) Create(ctx context.Context, board *entities.Board) error {
	if board.ID == "" {
		r.nextID++
		board.ID = fmt.Sprintf("board-%d", r.nextID)
	}
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) FindByID(ctx context.Context, id string) (*entities.Board, error) {
	board, ok := r.boards[id]
	if !ok || board.IsDeleted() {
		return nil, nil
	}
	copied := *board
	return &copied, nil
}

func (r *fakeBoardRepo) ListByUser(ctx context.Context, userID string) ([]*entities.Board, error) {
	var boards []*entities.Board
	for _, board := range r.boards {
		if board.IsDeleted() {
			continue
		}
		if board.IsMember(userID) {
			copied := *board
			boards = append(boards, &copied)
		}
	}
	return boards, nil
}

func (r *fakeBoardRepo) Update(ctx context.Context, board *entities.Board) error {
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) Delete(ctx context.Context, id string) error {
	if board, ok := r.boards[id]; ok {
		board.SoftDelete()
	}
	return nil
}

func (r *fakeBoardRepo) AddMembers(ctx context.Context, boardID string, userIDs []string) error {
	board, ok := r.boards[boardID]
	if !ok {
		return fmt.Errorf("board %s not found", boardID)
	}
	for _, id := range userIDs {
		board.Members = append(board.Members, entities.User{ID: id})
	}
	return nil
}

type fakeNotifier struct {
	pushed map[string][]ports.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{pushed: make(map[string][]ports.Notification)}
}

func (n *fakeNotifier) Push(userID string, notification ports.Notification) {
	n.pushed[userID] = append(n.pushed[userID], notification)
}
