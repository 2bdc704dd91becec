package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// AuthHandler lida com registro e login
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register cria uma nova conta
//
//	@Summary	Registra uma nova conta
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequest	true	"Dados de registro"
//	@Success	201		{object}	dto.SuccessResponse{data=dto.AuthResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.ToAuthResponse(user, token)))
}

// Login autentica um usuário
//
//	@Summary	Autentica um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.AuthResponse}
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToAuthResponse(user, token)))
}
