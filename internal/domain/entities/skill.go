package entities

import (
	"errors"
	"strings"
	"time"
)

// Skill representa uma entrada do catálogo de skills permitidas.
// Usuários só podem referenciar skills existentes neste catálogo.
type Skill struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NormalizeSkillName normaliza o nome de uma skill para comparação
func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate valida regras de negócio da entidade Skill
func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("skill name is required")
	}

	if len(s.Name) > 100 {
		return errors.New("skill name must be at most 100 characters")
	}

	return nil
}
