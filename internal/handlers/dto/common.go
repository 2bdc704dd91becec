package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// SuccessResponse é o envelope padrão de sucesso: { "status", "data" }
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Success cria um envelope de sucesso
func Success(data any) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RenderProblem escreve a resposta de erro com o media type RFC 7807
func RenderProblem(c *gin.Context, response ErrorResponse) {
	c.Writer.Header().Set("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// AbortProblem escreve a resposta de erro e aborta a cadeia de handlers
func AbortProblem(c *gin.Context, response ErrorResponse) {
	c.Writer.Header().Set("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		detailKey,
		404,
		params...,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		detailKey,
		403,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
