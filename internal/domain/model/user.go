package model

import "time"

// Role defines the access level of a user account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleTeam     Role = "TEAM"
	RoleBuyer    Role = "BUYER"
	RoleSupplier Role = "SUPPLIER"
)

// ValidRole reports whether the value is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTeam, RoleBuyer, RoleSupplier:
		return true
	}
	return false
}

// User represents a provisioned account of the back office.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Language     string
	CreatedAt    time.Time
}

// UserPayload is the identity claim set embedded into session tokens.
type UserPayload struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Language string `json:"language"`
}

// Payload derives token claims from a stored user.
func (u *User) Payload() UserPayload {
	return UserPayload{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Language: u.Language,
	}
}
