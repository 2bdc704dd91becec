package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims são as claims JWT emitidas pela aplicação
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager usando HMAC-SHA256
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager cria um novo JWTManager a partir da configuração
func NewJWTManager(cfg *config.JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	return &JWTManager{
		secret: []byte(cfg.Secret),
		expiry: cfg.AccessExpiryDuration(),
	}, nil
}

// Issue emite um token assinado para o usuário
func (m *JWTManager) Issue(user *entities.User) (string, error) {
	now := time.Now()

	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida a assinatura e expiração do token e retorna as claims
func (m *JWTManager) Verify(tokenString string) (*ports.TokenClaims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &ports.TokenClaims{
		UserID:    claims.Subject,
		Role:      entities.Role(claims.Role),
		ExpiresAt: expiresAt,
	}, nil
}
