package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// SkillHandler lida com o catálogo de skills
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler cria um novo SkillHandler
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills lista o catálogo de skills
//
//	@Summary	Lista o catálogo de skills
//	@Tags		skills
//	@Produce	json
//	@Success	200	{object}	dto.SuccessResponse{data=[]dto.SkillResponse}
//	@Security	BearerAuth
//	@Router		/skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToSkillResponses(skills)))
}

// CreateSkill adiciona uma skill ao catálogo
//
//	@Summary	Adiciona uma skill ao catálogo (admin)
//	@Tags		skills
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateSkillRequest	true	"Skill"
//	@Success	201		{object}	dto.SuccessResponse{data=dto.SkillResponse}
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	skill, err := h.skillService.CreateSkill(c.Request.Context(), req.Name)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.ToSkillResponse(skill)))
}
