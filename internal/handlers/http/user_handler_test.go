package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/services"
)

func setupUserRouter(t *testing.T, repo *memUserRepo, callerID string) *gin.Engine {
	t.Helper()

	userService := services.NewUserService(repo, newMemSkillRepo(), memUoW{}, memTokens{}, memLogger{})
	handler := NewUserHandler(userService)

	router := gin.New()
	router.Use(withI18n(t))
	admin := router.Group("/users", asUser(repo, callerID))
	admin.GET("", handler.ListUsers)
	admin.GET("/:id", handler.GetUserByID)
	admin.PATCH("/:id", handler.UpdateUserByID)
	admin.DELETE("/:id", handler.DeleteUserByID)
	return router
}

// seedWithUUID cria usuários com IDs UUID (como em produção)
func seedWithUUID(t *testing.T, repo *memUserRepo, username, email string, role entities.Role) *entities.User {
	t.Helper()

	user := seedMemUser(t, repo, username, email, "senha", role)
	delete(repo.users, user.ID)
	user.ID = uuid.NewString()
	if err := repo.Update(t.Context(), user); err != nil {
		t.Fatalf("falha ao reindexar usuário: %v", err)
	}
	return user
}

func TestUserHandler_ListUsers(t *testing.T) {
	repo := newMemUserRepo()
	admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
	seedWithUUID(t, repo, "maria", "maria@example.com", entities.RoleUser)
	router := setupUserRouter(t, repo, admin.ID)

	t.Run("lista todos os usuários", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		var list dto.UserListResponse
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &list); err != nil {
			t.Fatalf("falha ao decodificar: %v", err)
		}
		if list.Total != 2 {
			t.Errorf("esperava total 2, obteve %d", list.Total)
		}
	})

	t.Run("role inválido na query retorna 400", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users?role=superuser", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("filtra por role", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users?role=admin", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		var list dto.UserListResponse
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &list); err != nil {
			t.Fatalf("falha ao decodificar: %v", err)
		}
		if list.Total != 1 || list.Users[0].Username != "admin" {
			t.Errorf("esperava apenas o admin, obteve %+v", list)
		}
	})
}

func TestUserHandler_GetUserByID(t *testing.T) {
	repo := newMemUserRepo()
	admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
	target := seedWithUUID(t, repo, "maria", "maria@example.com", entities.RoleUser)
	router := setupUserRouter(t, repo, admin.ID)

	t.Run("retorna o usuário", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users/"+target.ID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("id que não é UUID retorna 400", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users/not-a-uuid", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("usuário inexistente retorna 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/users/"+uuid.NewString(), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("esperava 404, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestUserHandler_UpdateUserByID(t *testing.T) {
	t.Run("admin promove outro usuário", func(t *testing.T) {
		repo := newMemUserRepo()
		admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
		target := seedWithUUID(t, repo, "maria", "maria@example.com", entities.RoleUser)
		router := setupUserRouter(t, repo, admin.ID)

		w := doJSON(router, http.MethodPatch, "/users/"+target.ID, gin.H{"role": "admin"})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		stored, _ := repo.FindByID(t.Context(), target.ID)
		if stored.Role != entities.RoleAdmin {
			t.Errorf("esperava role admin persistido, obteve '%s'", stored.Role)
		}
	})

	t.Run("admin não pode rebaixar a si mesmo", func(t *testing.T) {
		repo := newMemUserRepo()
		admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
		router := setupUserRouter(t, repo, admin.ID)

		w := doJSON(router, http.MethodPatch, "/users/"+admin.ID, gin.H{"role": "user"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("role desconhecido falha na validação", func(t *testing.T) {
		repo := newMemUserRepo()
		admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
		target := seedWithUUID(t, repo, "maria", "maria@example.com", entities.RoleUser)
		router := setupUserRouter(t, repo, admin.ID)

		w := doJSON(router, http.MethodPatch, "/users/"+target.ID, gin.H{"role": "superuser"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestUserHandler_DeleteUserByID(t *testing.T) {
	t.Run("deleta usuário comum com 204", func(t *testing.T) {
		repo := newMemUserRepo()
		admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
		target := seedWithUUID(t, repo, "maria", "maria@example.com", entities.RoleUser)
		router := setupUserRouter(t, repo, admin.ID)

		w := doJSON(router, http.MethodDelete, "/users/"+target.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("esperava 204, obteve %d: %s", w.Code, w.Body.String())
		}

		stored, _ := repo.FindByID(t.Context(), target.ID)
		if stored != nil {
			t.Error("usuário deletado não deveria ser encontrado")
		}
	})

	t.Run("deletar admin retorna 400", func(t *testing.T) {
		repo := newMemUserRepo()
		admin := seedWithUUID(t, repo, "admin", "admin@example.com", entities.RoleAdmin)
		other := seedWithUUID(t, repo, "admin2", "admin2@example.com", entities.RoleAdmin)
		router := setupUserRouter(t, repo, admin.ID)

		w := doJSON(router, http.MethodDelete, "/users/"+other.ID, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}
