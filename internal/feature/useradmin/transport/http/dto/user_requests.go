// Package dto defines the JSON request and response types of the admin
// user-management endpoints.
package dto

import "time"

// CreateUserRequest is the body of POST /create-user and
// POST /manage-users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// UpdateUserRequest is the body of PUT /manage-users. An omitted role
// resets the user's role to "user".
type UpdateUserRequest struct {
	UserID   string `json:"userId"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// DeleteUserRequest is the body of DELETE /manage-users.
type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// UserResponse is the compact user shape echoed back by mutations.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ManagedUserResponse is one merged record in the listing.
type ManagedUserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	DisplayName  string     `json:"display_name"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	Confirmed    bool       `json:"confirmed"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// ListUsersResponse is the GET /manage-users envelope.
type ListUsersResponse struct {
	Users []ManagedUserResponse `json:"users"`
}

// CreateUserResponse is the POST /create-user envelope.
type CreateUserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ManageUserResponse is the POST/PUT /manage-users envelope.
type ManageUserResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// MessageResponse is the DELETE /manage-users envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the error taxonomy label plus the underlying
// store message for operator diagnosis.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
