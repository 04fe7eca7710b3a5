package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(raw), true
	}
	return "", false
}

type UserProfile struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Name      string
	UpdatedAt time.Time
}

func (UserProfile) TableName() string { return "user_profiles" }

type AdminUser struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	GrantedBy uuid.UUID
	CreatedAt time.Time
}

func (AdminUser) TableName() string { return "admin_users" }

// Principal is the authenticated caller extracted from a bearer token.
// The zero value is an anonymous caller.
type Principal struct {
	UserID uuid.UUID
	Name   string
}

func (p Principal) Anonymous() bool { return p.UserID == uuid.Nil }
