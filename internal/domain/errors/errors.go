package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrEmailAlreadyExists    = errors.New("error.email_already_exists")
	ErrUsernameAlreadyExists = errors.New("error.username_already_exists")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrUnauthorized          = errors.New("error.unauthorized")
	ErrForbidden             = errors.New("error.forbidden")
	ErrSkillNotFound         = errors.New("error.skill_not_found")
	ErrSkillAlreadyExists    = errors.New("error.skill_already_exists")
	ErrBoardNotFound         = errors.New("error.board_not_found")
	ErrNotBoardOwner         = errors.New("error.not_board_owner")
	ErrNotBoardMember        = errors.New("error.not_board_member")
	ErrSelfInvite            = errors.New("error.self_invite")
	ErrCannotDeleteAdmin     = errors.New("error.cannot_delete_admin")
	ErrCannotDemoteSelf      = errors.New("error.cannot_demote_self")
	ErrWrongCurrentPassword  = errors.New("error.wrong_current_password")
	ErrPasswordMismatch      = errors.New("error.password_confirmation_mismatch")
	ErrInvalidWorkDuration   = errors.New("error.invalid_work_duration")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// SkillNotFound indica que uma skill referenciada não existe no catálogo.
// Carrega o valor ofensivo para a mensagem de erro.
type SkillNotFound struct {
	Value string
}

func (e *SkillNotFound) Error() string {
	return ErrSkillNotFound.Error() + ": " + e.Value
}

func (e *SkillNotFound) Unwrap() error {
	return ErrSkillNotFound
}

// InvalidEmail indica que um email informado tem sintaxe inválida.
// Carrega o valor ofensivo para a mensagem de erro.
type InvalidEmail struct {
	Value string
}

func (e *InvalidEmail) Error() string {
	return ErrInvalidEmail.Error() + ": " + e.Value
}

func (e *InvalidEmail) Unwrap() error {
	return ErrInvalidEmail
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
