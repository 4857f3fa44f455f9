// Package entity defines the domain entities for the useradmin feature.
package entity

import (
	"strings"
	"time"
)

// Role is the closed set of roles a managed user can hold.
type Role string

const (
	// RoleAdmin grants access to the admin endpoints.
	RoleAdmin Role = "admin"

	// RoleUser is the default role for all other accounts.
	RoleUser Role = "user"
)

// ParseRole normalizes a free-form role value into the closed Role set.
// An empty value defaults to RoleUser. Unknown values are rejected with
// ok == false. Every entry point that accepts a role goes through here.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return RoleUser, false
	}
}

// Metadata is the free-form profile data mirrored into the identity
// service's user record.
type Metadata struct {
	Role        Role
	FullName    string
	DisplayName string
}

// DirectoryUser is one record in the external identity service.
// The ID is generated by the service at creation and is the join key
// against the profiles table.
type DirectoryUser struct {
	ID           string
	Email        string
	Confirmed    bool
	BannedUntil  *time.Time
	CreatedAt    time.Time
	LastSignInAt *time.Time
	Metadata     Metadata
}

// Active reports whether the user is not currently banned.
func (u *DirectoryUser) Active(now time.Time) bool {
	return u.BannedUntil == nil || u.BannedUntil.Before(now)
}

// NewDirectoryUser carries the fields needed to create an identity record.
type NewDirectoryUser struct {
	Email    string
	Password string
	Confirm  bool
	Metadata Metadata
}

// Profile is the application-side profile row, keyed by the identity
// service's user ID.
type Profile struct {
	ID          string `gorm:"primaryKey;size:64"`
	Email       string `gorm:"size:255;not null"`
	FullName    string `gorm:"size:255;not null"`
	DisplayName string `gorm:"size:255"`
	Role        Role   `gorm:"size:16;not null;default:user"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the gorm table name.
func (Profile) TableName() string { return "profiles" }

// ManagedUser is the merged view of one user across both stores, as
// returned by the listing operation. Profile fields win when a profile
// row exists; otherwise identity metadata is used as the fallback.
type ManagedUser struct {
	ID           string
	Email        string
	FullName     string
	DisplayName  string
	Role         Role
	Active       bool
	Confirmed    bool
	CreatedAt    time.Time
	LastSignInAt *time.Time
}
