package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/handlers/middleware"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// BoardHandler lida com boards (workspaces)
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler cria um novo BoardHandler
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard cria um board e convida membros por email
//
//	@Summary	Cria um board
//	@Tags		boards
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateBoardRequest	true	"Dados do board"
//	@Success	201		{object}	dto.SuccessResponse{data=dto.BoardInviteResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	board, outcome, err := h.boardService.CreateBoard(c.Request.Context(), user, services.CreateBoardInput{
		Name:         req.Name,
		Description:  req.Description,
		InviteEmails: req.InviteEmails,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.ToBoardInviteResponse(board, outcome)))
}

// ListBoards lista os boards do usuário autenticado
//
//	@Summary	Lista os boards do usuário
//	@Tags		boards
//	@Produce	json
//	@Success	200	{object}	dto.SuccessResponse{data=[]dto.BoardResponse}
//	@Security	BearerAuth
//	@Router		/boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	user := middleware.CurrentUser(c)

	boards, err := h.boardService.ListBoards(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToBoardResponses(boards)))
}

// GetBoard busca um board; apenas membros podem ver
//
//	@Summary	Busca um board por ID
//	@Tags		boards
//	@Produce	json
//	@Param		id	path		string	true	"ID do board"
//	@Success	200	{object}	dto.SuccessResponse{data=dto.BoardResponse}
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	board, err := h.boardService.GetBoard(c.Request.Context(), user.ID, id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToBoardResponse(board)))
}

// UpdateBoard atualiza um board; somente o dono pode
//
//	@Summary	Atualiza um board
//	@Tags		boards
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID do board"
//	@Param		request	body		dto.UpdateBoardRequest	true	"Campos a atualizar"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.BoardResponse}
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/boards/{id} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), user.ID, id, services.UpdateBoardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToBoardResponse(board)))
}

// DeleteBoard faz soft delete de um board; somente o dono pode
//
//	@Summary	Deleta um board
//	@Tags		boards
//	@Param		id	path	string	true	"ID do board"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	if err := h.boardService.DeleteBoard(c.Request.Context(), user.ID, id); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// InviteMembers convida membros para um board existente
//
//	@Summary	Convida membros para um board
//	@Tags		boards
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID do board"
//	@Param		request	body		dto.InviteMembersRequest	true	"Emails"
//	@Success	200		{object}	dto.SuccessResponse{data=dto.BoardInviteResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/boards/{id}/members [post]
func (h *BoardHandler) InviteMembers(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	var req dto.InviteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	outcome, err := h.boardService.InviteMembers(c.Request.Context(), user, id, req.Emails)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), user.ID, id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToBoardInviteResponse(board, outcome)))
}
