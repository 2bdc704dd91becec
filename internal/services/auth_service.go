package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/errors"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de registro e autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		uow:      uow,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Register cria uma nova conta. O role é sempre "user": promoção a admin
// só acontece via endpoint administrativo.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, string, error) {
	s.logger.Info("registering user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", &errors.InvalidEmail{Value: input.Email}
	}

	// Validar unicidade de email e username
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		FullName:     input.FullName,
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
	}

	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login verifica as credenciais e emite um token assinado.
// Contas soft-deleted não autenticam (FindByEmail já as ignora).
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, emailVO.String())
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", "email", emailVO.String())
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}
