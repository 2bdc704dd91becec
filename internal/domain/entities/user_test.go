package entities

import (
	"testing"
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

func validUser(t *testing.T) *User {
	t.Helper()

	email, err := valueobjects.NewEmail("maria@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	return &User{
		ID:       "user-1",
		FullName: "Maria Silva",
		Username: "maria",
		Email:    email,
		Role:     RoleUser,
	}
}

func TestUser_Validate(t *testing.T) {
	t.Run("usuário válido passa na validação", func(t *testing.T) {
		user := validUser(t)
		if err := user.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("erro quando fullname está vazio", func(t *testing.T) {
		user := validUser(t)
		user.FullName = ""
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando fullname tem menos de 2 caracteres", func(t *testing.T) {
		user := validUser(t)
		user.FullName = "M"
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando username tem menos de 3 caracteres", func(t *testing.T) {
		user := validUser(t)
		user.Username = "ma"
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando role é inválido", func(t *testing.T) {
		user := validUser(t)
		user.Role = Role("superuser")
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando availability é inválida", func(t *testing.T) {
		user := validUser(t)
		user.Availability = Availability("weekends")
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("availability vazia é permitida", func(t *testing.T) {
		user := validUser(t)
		user.Availability = ""
		if err := user.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("erro quando anos de experiência é negativo", func(t *testing.T) {
		user := validUser(t)
		user.YearsOfExperience = -1
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando startDate é posterior a endDate", func(t *testing.T) {
		user := validUser(t)
		start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		user.WorkDuration = WorkDuration{StartDate: &start, EndDate: &end}
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("período de trabalho válido passa", func(t *testing.T) {
		user := validUser(t)
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		user.WorkDuration = WorkDuration{StartDate: &start, EndDate: &end}
		if err := user.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})
}

func TestUser_SoftDelete(t *testing.T) {
	user := validUser(t)

	if user.IsDeleted() {
		t.Error("usuário novo não deveria estar deletado")
	}

	user.SoftDelete()
	if !user.IsDeleted() {
		t.Error("esperava usuário deletado após SoftDelete")
	}

	user.Restore()
	if user.IsDeleted() {
		t.Error("esperava usuário restaurado após Restore")
	}
}

func TestUser_HasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		expected   bool
	}{
		{"admin pode escrever usuários", RoleAdmin, PermissionUserWrite, true},
		{"admin pode deletar usuários", RoleAdmin, PermissionUserDelete, true},
		{"user não pode escrever usuários", RoleUser, PermissionUserWrite, false},
		{"user pode ler skills", RoleUser, PermissionSkillRead, true},
		{"user pode escrever boards", RoleUser, PermissionBoardWrite, true},
		{"guest não pode escrever boards", RoleGuest, PermissionBoardWrite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser(t)
			user.Role = tt.role

			result := user.HasPermission(tt.permission)
			if result != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, result)
			}
		})
	}
}

func TestUser_SkillNames(t *testing.T) {
	user := validUser(t)
	user.Skills = []Skill{
		{ID: "s1", Name: "go"},
		{ID: "s2", Name: "postgresql"},
	}

	names := user.SkillNames()
	if len(names) != 2 || names[0] != "go" || names[1] != "postgresql" {
		t.Errorf("esperava [go postgresql], obteve %v", names)
	}
}

func TestAvailability_IsValid(t *testing.T) {
	valid := []Availability{AvailabilityFullTime, AvailabilityPartTime, AvailabilityHourly, AvailabilityNotAvailable}
	for _, a := range valid {
		if !a.IsValid() {
			t.Errorf("esperava '%s' válida", a)
		}
	}

	if Availability("sometimes").IsValid() {
		t.Error("esperava 'sometimes' inválida")
	}
}
