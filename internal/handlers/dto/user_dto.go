package dto

import (
	"time"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/services"
)

// WorkDurationPayload representa o período de trabalho esperado no JSON
type WorkDurationPayload struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// UpdateProfileRequest representa a requisição de atualização de perfil.
// Somente estes campos são mutáveis (allow-list); password e role têm
// endpoints próprios e são rejeitados se aparecerem no corpo.
type UpdateProfileRequest struct {
	FullName          *string              `json:"fullname" binding:"omitempty,min=2,max=100"`
	Username          *string              `json:"username" binding:"omitempty,min=3,max=50,alphanum"`
	AvatarURL         *string              `json:"avatar" binding:"omitempty,url,max=500"`
	Skills            *[]string            `json:"skills" binding:"omitempty,max=50"`
	About             *string              `json:"about" binding:"omitempty,max=2000"`
	Experience        *string              `json:"experience" binding:"omitempty,max=2000"`
	YearsOfExperience *int                 `json:"yearOfExperience" binding:"omitempty,min=0,max=80"`
	Availability      *string              `json:"availability" binding:"omitempty,availability"`
	WorkDuration      *WorkDurationPayload `json:"expectedWorkDuration"`
}

// ToInput converte a requisição para o input do service
func (r *UpdateProfileRequest) ToInput() services.UpdateProfileInput {
	input := services.UpdateProfileInput{
		FullName:          r.FullName,
		Username:          r.Username,
		AvatarURL:         r.AvatarURL,
		Skills:            r.Skills,
		About:             r.About,
		Experience:        r.Experience,
		YearsOfExperience: r.YearsOfExperience,
		Availability:      r.Availability,
	}
	if r.WorkDuration != nil {
		input.WorkDuration = &services.WorkDurationInput{
			StartDate: r.WorkDuration.StartDate,
			EndDate:   r.WorkDuration.EndDate,
		}
	}
	return input
}

// ChangePasswordRequest representa a requisição de troca de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// FindByEmailsRequest representa a requisição de busca de usuários por email
type FindByEmailsRequest struct {
	Emails []string `json:"emails" binding:"required,min=1,max=50"`
}

// EmailLookupResponse particiona os emails em encontrados e não encontrados
type EmailLookupResponse struct {
	Found    []UserResponse `json:"found"`
	NotFound []string       `json:"notFound"`
}

// ToEmailLookupResponse converte o resultado do service
func ToEmailLookupResponse(result *services.EmailLookupResult) EmailLookupResponse {
	response := EmailLookupResponse{
		Found:    ToUserResponses(result.Found),
		NotFound: result.NotFound,
	}
	if response.NotFound == nil {
		response.NotFound = []string{}
	}
	return response
}

// AdminUpdateUserRequest representa os campos que um admin pode alterar
type AdminUpdateUserRequest struct {
	FullName  *string `json:"fullname" binding:"omitempty,min=2,max=100"`
	Username  *string `json:"username" binding:"omitempty,min=3,max=50,alphanum"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin user guest"`
	AvatarURL *string `json:"avatar" binding:"omitempty,url,max=500"`
}

// ToInput converte a requisição para o input do service
func (r *AdminUpdateUserRequest) ToInput() services.AdminUpdateUserInput {
	return services.AdminUpdateUserInput{
		FullName:  r.FullName,
		Username:  r.Username,
		Email:     r.Email,
		Role:      r.Role,
		AvatarURL: r.AvatarURL,
	}
}

// UserResponse representa a resposta sanitizada de um usuário
// (sem hash de senha)
type UserResponse struct {
	ID                string               `json:"id"`
	FullName          string               `json:"fullname"`
	Username          string               `json:"username"`
	Email             string               `json:"email"`
	Role              string               `json:"role"`
	AvatarURL         *string              `json:"avatar,omitempty"`
	Skills            []string             `json:"skills"`
	About             string               `json:"about,omitempty"`
	Experience        string               `json:"experience,omitempty"`
	YearsOfExperience int                  `json:"yearOfExperience"`
	Availability      string               `json:"availability,omitempty"`
	WorkDuration      *WorkDurationPayload `json:"expectedWorkDuration,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	response := UserResponse{
		ID:                user.ID,
		FullName:          user.FullName,
		Username:          user.Username,
		Email:             user.Email.String(),
		Role:              string(user.Role),
		AvatarURL:         user.AvatarURL,
		Skills:            user.SkillNames(),
		About:             user.About,
		Experience:        user.Experience,
		YearsOfExperience: user.YearsOfExperience,
		Availability:      string(user.Availability),
		CreatedAt:         user.CreatedAt,
	}

	if !user.WorkDuration.IsZero() {
		response.WorkDuration = &WorkDurationPayload{
			StartDate: user.WorkDuration.StartDate,
			EndDate:   user.WorkDuration.EndDate,
		}
	}

	return response
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// UserListResponse representa a resposta paginada de listagem de usuários
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
