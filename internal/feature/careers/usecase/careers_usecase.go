// Package usecase implements the careers-form business logic.
package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"clinic_backend/internal/feature/careers/domain"
	"clinic_backend/internal/feature/careers/domain/entity"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ApplicationRepository abstracts the persistence layer for careers
// applications. Interfaces are defined by the consumer (usecase).
type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, a *entity.Application) error

	// List retrieves all applications, newest first.
	List(ctx context.Context) ([]entity.Application, error)
}

// SubmitInput carries the raw careers-form fields.
type SubmitInput struct {
	FullName string
	Email    string
	Phone    string
	Position string
	Message  string
}

// careersUsecase validates and stores careers applications.
type careersUsecase struct {
	applications ApplicationRepository
}

// NewCareersUsecase creates a new careersUsecase instance.
func NewCareersUsecase(applications ApplicationRepository) *careersUsecase {
	return &careersUsecase{applications: applications}
}

// Submit validates a careers-form submission and stores it with a fresh
// application ID.
func (u *careersUsecase) Submit(ctx context.Context, in SubmitInput) (*entity.Application, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	position := strings.TrimSpace(in.Position)

	if fullName == "" || email == "" || position == "" {
		return nil, domain.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	app := &entity.Application{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Position: position,
		Message:  strings.TrimSpace(in.Message),
	}
	if err := u.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	slog.Info("careers application received", "application_id", app.ID, "position", app.Position)
	return app, nil
}

// List retrieves all stored applications.
func (u *careersUsecase) List(ctx context.Context) ([]entity.Application, error) {
	return u.applications.List(ctx)
}
