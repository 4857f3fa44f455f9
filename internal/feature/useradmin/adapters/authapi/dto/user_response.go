// Package dto defines the wire types of the auth admin API.
package dto

import "time"

// UserMetadata is the free-form metadata block on an auth user record.
type UserMetadata struct {
	Role        string `json:"role,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// User is one auth user record as returned by the admin API.
type User struct {
	ID               string       `json:"id"`
	Email            string       `json:"email"`
	CreatedAt        *time.Time   `json:"created_at,omitempty"`
	LastSignInAt     *time.Time   `json:"last_sign_in_at,omitempty"`
	EmailConfirmedAt *time.Time   `json:"email_confirmed_at,omitempty"`
	BannedUntil      *time.Time   `json:"banned_until,omitempty"`
	UserMetadata     UserMetadata `json:"user_metadata"`
}

// ListUsersResponse is the paged listing envelope.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// CreateUserRequest is the admin create-user request body.
type CreateUserRequest struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	EmailConfirm bool         `json:"email_confirm"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// UpdateUserRequest is the admin update-user request body.
type UpdateUserRequest struct {
	UserMetadata UserMetadata `json:"user_metadata"`
}

// ErrorResponse is the error envelope; the service is inconsistent about
// which field carries the message, so all three are checked.
type ErrorResponse struct {
	Message          string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
