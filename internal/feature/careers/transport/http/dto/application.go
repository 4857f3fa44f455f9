// Package dto defines the JSON request and response types of the
// careers endpoints.
package dto

import "time"

// SubmitApplicationRequest is the body of POST /careers-application.
type SubmitApplicationRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

// ApplicationResponse is one stored application.
type ApplicationResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitApplicationResponse is the POST /careers-application envelope.
type SubmitApplicationResponse struct {
	Message     string              `json:"message"`
	Application ApplicationResponse `json:"application"`
}

// ListApplicationsResponse is the GET /careers-applications envelope.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
