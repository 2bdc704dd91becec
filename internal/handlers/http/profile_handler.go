package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/handlers/middleware"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// forbiddenProfileFields são campos que nunca podem ser alterados pelo
// endpoint de perfil (têm endpoints próprios)
var forbiddenProfileFields = []string{"password", "role"}

// ProfileHandler lida com o perfil do usuário autenticado
type ProfileHandler struct {
	userService *services.UserService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

// GetProfile retorna o perfil sanitizado do usuário autenticado
//
//	@Summary	Retorna o perfil do usuário autenticado
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	dto.SuccessResponse{data=dto.UserResponse}
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(profile)))
}

// UpdateProfile atualiza os campos permitidos do perfil.
// password e role no corpo são rejeitados com 400.
//
//	@Summary	Atualiza o perfil do usuário autenticado
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileRequest	true	"Campos a atualizar"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.UserResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	body, err := c.GetRawData()
	if err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	// Allow-list: rejeitar campos proibidos antes do binding
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		dto.RespondBindingError(c, err)
		return
	}
	for _, field := range forbiddenProfileFields {
		if _, present := raw[field]; present {
			dto.RenderProblem(c, dto.BadRequestErrorResponseI18n(c, "error.field_not_allowed",
				map[string]interface{}{"Field": field}))
			return
		}
	}

	var req dto.UpdateProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(updated)))
}

// ChangePassword troca a senha do usuário autenticado e emite novo token
//
//	@Summary	Troca a senha do usuário autenticado
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ChangePasswordRequest	true	"Senhas"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.TokenResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/profile/password [patch]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	token, err := h.userService.ChangePassword(
		c.Request.Context(),
		user.ID,
		req.CurrentPassword,
		req.NewPassword,
		req.ConfirmPassword,
	)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.TokenResponse{Token: token}))
}

// DeactivateMe faz soft delete da própria conta
//
//	@Summary	Desativa a conta do usuário autenticado
//	@Tags		profile
//	@Success	204
//	@Security	BearerAuth
//	@Router		/profile [delete]
func (h *ProfileHandler) DeactivateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.userService.DeactivateMe(c.Request.Context(), user.ID); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FindUsersByEmails busca usuários por email para convites
//
//	@Summary	Busca usuários por email
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.FindByEmailsRequest	true	"Emails"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.EmailLookupResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/by-emails [post]
func (h *ProfileHandler) FindUsersByEmails(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.FindByEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	result, err := h.userService.FindUsersByEmails(c.Request.Context(), user, req.Emails)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToEmailLookupResponse(result)))
}
