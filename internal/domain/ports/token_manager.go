package ports

import (
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// TokenClaims representa as claims extraídas de um token válido
type TokenClaims struct {
	UserID    string
	Role      entities.Role
	ExpiresAt time.Time
}

// TokenManager define a interface para emissão e verificação de tokens
type TokenManager interface {
	Issue(user *entities.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
