package dto

import (
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// CreateSkillRequest representa a requisição para adicionar uma skill ao catálogo
type CreateSkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// SkillResponse representa uma skill do catálogo
type SkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToSkillResponse converte uma entidade Skill para SkillResponse
func ToSkillResponse(skill *entities.Skill) SkillResponse {
	return SkillResponse{
		ID:        skill.ID,
		Name:      skill.Name,
		CreatedAt: skill.CreatedAt,
	}
}

// ToSkillResponses converte uma lista de entidades Skill
func ToSkillResponses(skills []*entities.Skill) []SkillResponse {
	responses := make([]SkillResponse, len(skills))
	for i, skill := range skills {
		responses[i] = ToSkillResponse(skill)
	}
	return responses
}
