package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

// RegisterCustomValidators registra validações customizadas no engine
// do Gin. Deve ser chamado uma vez no boot da aplicação.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// availability: valor deve pertencer ao enum de disponibilidade
	_ = v.RegisterValidation("availability", func(fl validator.FieldLevel) bool {
		return entities.Availability(fl.Field().String()).IsValid()
	})
}
