package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// IsValid verifica se o role pertence ao conjunto conhecido
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"

	// Skill catalog permissions
	PermissionSkillRead  Permission = "skills.read"
	PermissionSkillWrite Permission = "skills.write"

	// Board permissions
	PermissionBoardRead  Permission = "boards.read"
	PermissionBoardWrite Permission = "boards.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionSkillRead,
		PermissionSkillWrite,
		PermissionBoardRead,
		PermissionBoardWrite,
	},
	RoleUser: {
		PermissionUserRead,
		PermissionSkillRead,
		PermissionBoardRead,
		PermissionBoardWrite,
	},
	RoleGuest: {
		PermissionUserRead,
		PermissionSkillRead,
		PermissionBoardRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
