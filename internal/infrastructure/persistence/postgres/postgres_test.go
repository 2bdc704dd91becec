package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

// setupTestDB cria um banco SQLite em memória com o schema migrado.
// Cada teste usa um banco próprio (nomeado pelo t.Name()).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite em memória: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	return db
}

// mustCreateUser persiste um usuário mínimo válido
func mustCreateUser(t *testing.T, repo repositories.UserRepository, username, email string) *entities.User {
	t.Helper()

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	user := &entities.User{
		FullName:     "Usuário " + username,
		Username:     username,
		Email:        emailVO,
		PasswordHash: "hash",
		Role:         entities.RoleUser,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}
	return user
}
