package dto

import (
	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de registro de conta
type RegisterRequest struct {
	FullName string `json:"fullname" binding:"required,min=2,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse representa a resposta de autenticação (token + usuário)
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// TokenResponse representa a resposta contendo apenas um novo token
type TokenResponse struct {
	Token string `json:"token"`
}

// ToAuthResponse monta a resposta de autenticação
func ToAuthResponse(user *entities.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  ToUserResponse(user),
	}
}
