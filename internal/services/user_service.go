package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/errors"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para perfil e administração de usuários
type UserService struct {
	userRepo  repositories.UserRepository
	skillRepo repositories.SkillRepository
	uow       ports.UnitOfWork
	tokens    ports.TokenManager
	logger    ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
	uow ports.UnitOfWork,
	tokens ports.TokenManager,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		uow:       uow,
		tokens:    tokens,
		logger:    logger,
	}
}

// GetProfile busca o perfil do usuário autenticado
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// WorkDurationInput representa o período de trabalho informado na atualização
type WorkDurationInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateProfileInput representa os campos mutáveis do perfil (allow-list).
// Password e role nunca passam por aqui: têm endpoints próprios.
type UpdateProfileInput struct {
	FullName          *string
	Username          *string
	AvatarURL         *string
	Skills            *[]string
	About             *string
	Experience        *string
	YearsOfExperience *int
	Availability      *string
	WorkDuration      *WorkDurationInput
}

// UpdateProfile aplica os campos permitidos ao perfil do usuário.
// Skills são validadas contra o catálogo: valor desconhecido é rejeitado
// com o nome ofensivo na mensagem.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrUsernameAlreadyExists
		}
		user.Username = *input.Username
	}

	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if input.About != nil {
		user.About = *input.About
	}

	if input.Experience != nil {
		user.Experience = *input.Experience
	}

	if input.YearsOfExperience != nil {
		user.YearsOfExperience = *input.YearsOfExperience
	}

	if input.Availability != nil {
		user.Availability = entities.Availability(*input.Availability)
	}

	if input.WorkDuration != nil {
		user.WorkDuration = entities.WorkDuration{
			StartDate: input.WorkDuration.StartDate,
			EndDate:   input.WorkDuration.EndDate,
		}
		if err := user.WorkDuration.Validate(); err != nil {
			return nil, errors.ErrInvalidWorkDuration
		}
	}

	if input.Skills != nil {
		skills, err := s.resolveSkills(ctx, *input.Skills)
		if err != nil {
			return nil, err
		}
		user.Skills = skills
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	return user, nil
}

// resolveSkills valida os nomes contra o catálogo de skills
func (s *UserService) resolveSkills(ctx context.Context, names []string) ([]entities.Skill, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		n := entities.NormalizeSkillName(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	found, err := s.skillRepo.FindByNames(ctx, normalized)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*entities.Skill, len(found))
	for _, skill := range found {
		byName[entities.NormalizeSkillName(skill.Name)] = skill
	}

	skills := make([]entities.Skill, 0, len(normalized))
	for _, name := range normalized {
		skill, ok := byName[name]
		if !ok {
			return nil, &errors.SkillNotFound{Value: name}
		}
		skills = append(skills, *skill)
	}

	return skills, nil
}

// ChangePassword troca a senha do usuário após verificar a senha atual.
// Em caso de sucesso, emite um novo token assinado.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, newPassword, confirm string) (string, error) {
	if newPassword != confirm {
		return "", errors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return "", errors.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return s.tokens.Issue(user)
}

// DeactivateMe faz soft delete da própria conta do usuário
func (s *UserService) DeactivateMe(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	s.logger.Info("deactivating account", "user_id", userID)
	return s.userRepo.Delete(ctx, userID)
}

// EmailLookupResult particiona os emails consultados em encontrados e não encontrados
type EmailLookupResult struct {
	Found    []*entities.User
	NotFound []string
}

// FindUsersByEmails busca usuários por email para convites.
// Emails com sintaxe inválida e auto-convite são rejeitados.
func (s *UserService) FindUsersByEmails(ctx context.Context, caller *entities.User, emails []string) (*EmailLookupResult, error) {
	normalized := make([]string, 0, len(emails))
	for _, raw := range emails {
		email, err := valueobjects.NewEmail(raw)
		if err != nil {
			return nil, &errors.InvalidEmail{Value: raw}
		}
		if email.Equals(caller.Email) {
			return nil, errors.ErrSelfInvite
		}
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

	result := &EmailLookupResult{}
	seen := make(map[string]bool, len(normalized))
	for _, email := range normalized {
		if seen[email] {
			continue
		}
		seen[email] = true

		if user, ok := byEmail[email]; ok {
			result.Found = append(result.Found, user)
		} else {
			result.NotFound = append(result.NotFound, email)
		}
	}

	return result, nil
}

// ListUsers lista usuários com filtros e paginação (admin)
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}

// GetUserByID busca um usuário por ID (admin)
func (s *UserService) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// AdminUpdateUserInput representa os campos que um admin pode alterar
type AdminUpdateUserInput struct {
	FullName  *string
	Username  *string
	Email     *string
	Role      *string
	AvatarURL *string
}

// UpdateUserByID atualiza um usuário arbitrário (admin).
// Um admin não pode alterar o próprio role (guarda de auto-demoção).
func (s *UserService) UpdateUserByID(ctx context.Context, caller *entities.User, id string, input AdminUpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Role != nil {
		role := entities.Role(*input.Role)
		if caller.ID == user.ID && role != caller.Role {
			return nil, errors.ErrCannotDemoteSelf
		}
		user.Role = role
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrUsernameAlreadyExists
		}
		user.Username = *input.Username
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, &errors.InvalidEmail{Value: *input.Email}
		}
		if !email.Equals(user.Email) {
			existing, err := s.userRepo.FindByEmail(ctx, email.String())
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, errors.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}

	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated by admin", "user_id", user.ID, "admin_id", caller.ID)
	return user, nil
}

// DeleteUserByID faz soft delete de um usuário (admin).
// Usuários admin não podem ser deletados.
func (s *UserService) DeleteUserByID(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if user.IsAdmin() {
		return errors.ErrCannotDeleteAdmin
	}

	s.logger.Info("user deleted by admin", "user_id", id)
	return s.userRepo.Delete(ctx, id)
}
