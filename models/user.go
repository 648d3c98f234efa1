package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleProfessional UserRole = "PROFESSIONAL"
	RoleReceptionist UserRole = "RECEPTIONIST"
)

// IsStaff reports whether the role can appear on the schedule and in
// commission reports.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleProfessional
}

type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	Role      UserRole   `json:"role"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `json:"isActive"`
}
