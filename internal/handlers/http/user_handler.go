package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/repositories"
	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/handlers/middleware"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// UserHandler lida com a administração de usuários (admin)
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários com filtros e paginação
//
//	@Summary	Lista usuários (admin)
//	@Tags		users
//	@Produce	json
//	@Param		role		query		string	false	"Filtrar por role"
//	@Param		search		query		string	false	"Busca em nome/username/email"
//	@Param		page		query		int		false	"Página"
//	@Param		pageSize	query		int		false	"Itens por página"
//	@Success	200			{object}	dto.SuccessResponse{data=dto.UserListResponse}
//	@Failure	403			{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := repositories.UserFilters{
		Search: c.Query("search"),
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := entities.Role(roleStr)
		if !role.IsValid() {
			dto.RenderProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "role", Message: "invalid role", Value: roleStr},
			}))
			return
		}
		filters.Role = &role
	}

	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	users, total, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.UserListResponse{
		Users:    dto.ToUserResponses(users),
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}))
}

// GetUserByID busca um usuário por ID
//
//	@Summary	Busca um usuário por ID (admin)
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.SuccessResponse{data=dto.UserResponse}
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(user)))
}

// UpdateUserByID atualiza um usuário arbitrário
//
//	@Summary	Atualiza um usuário (admin)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"ID do usuário"
//	@Param		request	body		dto.AdminUpdateUserRequest	true	"Campos a atualizar"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.UserResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/{id} [patch]
func (h *UserHandler) UpdateUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	caller := middleware.CurrentUser(c)

	user, err := h.userService.UpdateUserByID(c.Request.Context(), caller, id, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(user)))
}

// DeleteUserByID faz soft delete de um usuário
//
//	@Summary	Deleta um usuário (admin)
//	@Tags		users
//	@Param		id	path	string	true	"ID do usuário"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUserByID(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID valida o parâmetro :id como UUID; responde 400 se inválido
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		dto.RenderProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "id", Message: "must be a valid UUID", Value: id},
		}))
		return "", false
	}
	return id, true
}
