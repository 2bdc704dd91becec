package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/i18n"
)

const (
	// CurrentUserContextKey é a chave usada para armazenar o usuário autenticado
	CurrentUserContextKey = "current_user"
)

// AuthMiddleware valida tokens e carrega o usuário autenticado.
// O usuário é recarregado a cada requisição: contas soft-deleted perdem
// acesso imediatamente, mesmo com token ainda válido.
type AuthMiddleware struct {
	tokens   ports.TokenManager
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenManager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um token Bearer válido e popula o usuário no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortProblem(c, 401, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			abortProblem(c, 401, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortProblem(c, 500, "/problems/internal-error", "error.internal.title", "error.internal.detail")
			return
		}
		if user == nil {
			// Conta deletada ou inexistente
			abortProblem(c, 401, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequirePermission exige que o usuário autenticado tenha a permissão.
// Deve ser encadeado após RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortProblem(c, 401, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		if !user.HasPermission(permission) {
			abortProblem(c, 403, "/problems/forbidden", "error.forbidden.title", "error.forbidden.detail")
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado do contexto (ou nil)
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}

	return user
}

// abortProblem monta uma resposta RFC 7807 sem depender do pacote dto
// (que importa este pacote)
func abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.Problem{
		Type:     baseURL + problemType,
		Title:    translate(c, titleKey),
		Status:   status,
		Detail:   translate(c, detailKey),
		Instance: c.Request.URL.Path,
	}

	c.Writer.Header().Set("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}

// translate traduz uma chave usando o serviço i18n do contexto
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
