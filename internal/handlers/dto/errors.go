package dto

import (
	errs "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/teamboard-backend/internal/domain/errors"
)

// RespondError mapeia erros de domínio para respostas RFC 7807.
// Faz o papel do error middleware centralizado: handlers só propagam
// o erro e chamam esta função.
func RespondError(c *gin.Context, err error) {
	var skillNotFound *errors.SkillNotFound
	if errs.As(err, &skillNotFound) {
		RenderProblem(c, NotFoundErrorResponseI18n(c, "error.skill_not_found",
			map[string]interface{}{"Value": skillNotFound.Value}))
		return
	}

	var invalidEmail *errors.InvalidEmail
	if errs.As(err, &invalidEmail) {
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.invalid_email",
			map[string]interface{}{"Value": invalidEmail.Value}))
		return
	}

	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		RenderProblem(c, NotFoundErrorResponseI18n(c, "error.user_not_found"))
	case errs.Is(err, errors.ErrBoardNotFound):
		RenderProblem(c, NotFoundErrorResponseI18n(c, "error.board_not_found"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		RenderProblem(c, ConflictErrorResponseI18n(c, "error.email_already_exists"))
	case errs.Is(err, errors.ErrUsernameAlreadyExists):
		RenderProblem(c, ConflictErrorResponseI18n(c, "error.username_already_exists"))
	case errs.Is(err, errors.ErrSkillAlreadyExists):
		RenderProblem(c, ConflictErrorResponseI18n(c, "error.skill_already_exists"))
	case errs.Is(err, errors.ErrInvalidCredentials):
		RenderProblem(c, UnauthorizedErrorResponseI18n(c, "error.invalid_credentials"))
	case errs.Is(err, errors.ErrWrongCurrentPassword):
		RenderProblem(c, UnauthorizedErrorResponseI18n(c, "error.wrong_current_password"))
	case errs.Is(err, errors.ErrUnauthorized):
		RenderProblem(c, UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
	case errs.Is(err, errors.ErrForbidden):
		RenderProblem(c, ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
	case errs.Is(err, errors.ErrNotBoardOwner):
		RenderProblem(c, ForbiddenErrorResponseI18n(c, "error.not_board_owner"))
	case errs.Is(err, errors.ErrNotBoardMember):
		RenderProblem(c, ForbiddenErrorResponseI18n(c, "error.not_board_member"))
	case errs.Is(err, errors.ErrSelfInvite):
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.self_invite"))
	case errs.Is(err, errors.ErrCannotDeleteAdmin):
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.cannot_delete_admin"))
	case errs.Is(err, errors.ErrCannotDemoteSelf):
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.cannot_demote_self"))
	case errs.Is(err, errors.ErrPasswordMismatch):
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.password_confirmation_mismatch"))
	case errs.Is(err, errors.ErrInvalidWorkDuration):
		RenderProblem(c, BadRequestErrorResponseI18n(c, "error.invalid_work_duration"))
	default:
		RenderProblem(c, InternalErrorResponseI18n(c))
	}
}

// RespondBindingError converte erros de binding do Gin (validator.v10)
// em uma resposta de validação com os campos ofensivos
func RespondBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errs.As(err, &validationErrors) {
		fields := make([]ValidationError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
		RenderProblem(c, ValidationErrorResponseI18n(c, fields))
		return
	}

	RenderProblem(c, ValidationErrorResponseI18n(c, nil))
}
