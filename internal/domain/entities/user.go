package entities

import (
	"errors"
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// Availability representa a disponibilidade declarada pelo usuário
type Availability string

const (
	AvailabilityFullTime     Availability = "full-time"
	AvailabilityPartTime     Availability = "part-time"
	AvailabilityHourly       Availability = "hourly"
	AvailabilityNotAvailable Availability = "not-available"
)

// IsValid verifica se a disponibilidade pertence ao conjunto conhecido
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityHourly, AvailabilityNotAvailable:
		return true
	}
	return false
}

// WorkDuration representa o período de trabalho esperado pelo usuário
type WorkDuration struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// IsZero verifica se nenhuma data foi informada
func (w WorkDuration) IsZero() bool {
	return w.StartDate == nil && w.EndDate == nil
}

// Validate valida a ordenação das datas (startDate <= endDate)
func (w WorkDuration) Validate() error {
	if w.StartDate != nil && w.EndDate != nil && w.StartDate.After(*w.EndDate) {
		return errors.New("start date must not be after end date")
	}
	return nil
}

// User representa um usuário do sistema
type User struct {
	ID                string
	FullName          string
	Username          string
	Email             valueobjects.Email
	PasswordHash      string
	Role              Role
	AvatarURL         *string
	Skills            []Skill
	About             string
	Experience        string
	YearsOfExperience int
	Availability      Availability
	WorkDuration      WorkDuration
	GoogleID          *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// SkillNames retorna os nomes das skills associadas ao usuário
func (u *User) SkillNames() []string {
	names := make([]string, len(u.Skills))
	for i, s := range u.Skills {
		names[i] = s.Name
	}
	return names
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.FullName == "" {
		return errors.New("fullname is required")
	}

	if len(u.FullName) < 2 {
		return errors.New("fullname must be at least 2 characters")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if len(u.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if u.Availability != "" && !u.Availability.IsValid() {
		return errors.New("invalid availability")
	}

	if u.YearsOfExperience < 0 {
		return errors.New("years of experience must not be negative")
	}

	if err := u.WorkDuration.Validate(); err != nil {
		return err
	}

	return nil
}
