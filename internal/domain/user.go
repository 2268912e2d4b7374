package domain

import "time"

type RoleName string

const (
	RoleUser  RoleName = "USER"
	RoleAdmin RoleName = "ADMIN"
)

// KnownRole reports whether name is part of the fixed role enumeration.
func KnownRole(name RoleName) bool {
	return name == RoleUser || name == RoleAdmin
}

type Role struct {
	ID   int64    `json:"id"`
	Name RoleName `json:"name"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleNames returns the user's role names in storage order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r.Name))
	}
	return names
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
