// Package usecase implements the admin user-management business logic.
//
// One logical user lives in two stores: the external identity service
// (the record of authentication state) and the local profiles table (the
// record of application profile fields). Every mutating operation here is
// a fixed two-step sequence over those stores; only the create path has a
// compensating action when the second write fails.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"clinic_backend/internal/feature/useradmin/domain"
	"clinic_backend/internal/feature/useradmin/domain/entity"
)

const (
	// minPasswordLength is the minimum credential length accepted on create.
	minPasswordLength = 6
)

// emailPattern requires at least one non-whitespace character before the
// @, one after it, a dot, and a non-whitespace suffix.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DirectoryRepository abstracts the external identity service.
// Interfaces are defined by the consumer (usecase), not the provider.
type DirectoryRepository interface {
	// ListUsers retrieves every identity record, paging through the
	// remote listing as needed.
	ListUsers(ctx context.Context) ([]entity.DirectoryUser, error)

	// FindByEmail retrieves the identity record matching the email,
	// case-insensitively. Returns domain.ErrUserNotFound when absent.
	// The identity service has no indexed lookup-by-email, so
	// implementations scan the full listing; callers must not assume
	// this is cheap.
	FindByEmail(ctx context.Context, email string) (*entity.DirectoryUser, error)

	// CreateUser creates a new identity record and returns it with the
	// service-generated ID.
	CreateUser(ctx context.Context, u entity.NewDirectoryUser) (*entity.DirectoryUser, error)

	// UpdateMetadata replaces the role/name metadata of an identity record.
	UpdateMetadata(ctx context.Context, id string, meta entity.Metadata) (*entity.DirectoryUser, error)

	// DeleteUser removes an identity record. Returns an error wrapping
	// domain.ErrUserNotFound when the record does not exist.
	DeleteUser(ctx context.Context, id string) error

	// UserFromToken resolves a caller bearer token to its identity record.
	UserFromToken(ctx context.Context, token string) (*entity.DirectoryUser, error)
}

// ProfileRepository abstracts the local profiles table.
type ProfileRepository interface {
	// Upsert inserts or replaces a profile row keyed by ID.
	Upsert(ctx context.Context, p *entity.Profile) error

	// List retrieves all profile rows.
	List(ctx context.Context) ([]entity.Profile, error)

	// Delete removes the profile row for the given ID. Deleting an
	// absent row is not an error.
	Delete(ctx context.Context, id string) error
}

// CreateInput carries the raw create-user request fields.
type CreateInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// CreateResult is the outcome of a create operation.
type CreateResult struct {
	User *entity.DirectoryUser

	// AlreadyExisted is true when the email matched an existing record
	// and the operation converged on it instead of creating a duplicate.
	AlreadyExisted bool
}

// UpdateInput carries the raw update-user request fields.
// An omitted Role is NOT "no change": it resets the role to user.
type UpdateInput struct {
	UserID   string
	FullName string
	Role     string
}

// DeleteResult is the outcome of a delete operation.
type DeleteResult struct {
	// AuthMissing is true when the identity record was already gone and
	// only the profile row needed cleanup.
	AuthMissing bool
}

// userAdminUsecase reconciles the two user stores.
type userAdminUsecase struct {
	directory DirectoryRepository
	profiles  ProfileRepository
}

// NewUserAdminUsecase creates a new userAdminUsecase instance.
func NewUserAdminUsecase(directory DirectoryRepository, profiles ProfileRepository) *userAdminUsecase {
	return &userAdminUsecase{
		directory: directory,
		profiles:  profiles,
	}
}

// Create provisions a user in both stores, treating an already-registered
// email as an update rather than a duplicate error.
//
// Validation failures return before any remote call. On a fresh create,
// a profile-write failure triggers a compensating delete of the identity
// record just created, so a failed create never leaves an identity-only
// orphan behind.
func (u *userAdminUsecase) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	email := strings.TrimSpace(in.Email)
	fullName := strings.TrimSpace(in.FullName)

	if email == "" || in.Password == "" || fullName == "" {
		return nil, domain.ErrMissingFields
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	meta := entity.Metadata{Role: role, FullName: fullName, DisplayName: fullName}

	existing, err := u.directory.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthCreateFailed, err)
	}

	if existing != nil {
		// The email is already registered: converge both stores on the
		// requested state. A metadata update failure is logged but does
		// not fail the request; a profile failure does.
		user := existing
		if updated, err := u.directory.UpdateMetadata(ctx, existing.ID, meta); err != nil {
			slog.Warn("metadata update for existing user failed",
				"user_id", existing.ID, "error", err)
		} else {
			user = updated
		}
		if err := u.profiles.Upsert(ctx, profileFor(existing.ID, existing.Email, meta)); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrProfileCreateFailed, err)
		}
		slog.Info("existing user converged", "user_id", existing.ID, "email", existing.Email)
		return &CreateResult{User: user, AlreadyExisted: true}, nil
	}

	created, err := u.directory.CreateUser(ctx, entity.NewDirectoryUser{
		Email:    email,
		Password: in.Password,
		Confirm:  true,
		Metadata: meta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthCreateFailed, err)
	}

	if err := u.profiles.Upsert(ctx, profileFor(created.ID, created.Email, meta)); err != nil {
		// Compensating action: remove the identity record created above
		// so a failed create never leaves an orphan. Its own failure is
		// logged, never escalated.
		if delErr := u.directory.DeleteUser(ctx, created.ID); delErr != nil {
			slog.Error("compensating identity delete failed",
				"user_id", created.ID, "error", delErr)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProfileCreateFailed, err)
	}

	slog.Info("user created", "user_id", created.ID, "email", created.Email, "role", role)
	return &CreateResult{User: created}, nil
}

// List returns one merged record per identity-service user. Identity
// records with no profile row are tolerated; their metadata fills in.
func (u *userAdminUsecase) List(ctx context.Context) ([]entity.ManagedUser, error) {
	users, err := u.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrListFailed, err)
	}
	profiles, err := u.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrListFailed, err)
	}

	byID := make(map[string]entity.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	now := time.Now()
	out := make([]entity.ManagedUser, 0, len(users))
	for _, du := range users {
		m := entity.ManagedUser{
			ID:           du.ID,
			Email:        du.Email,
			Active:       du.Active(now),
			Confirmed:    du.Confirmed,
			CreatedAt:    du.CreatedAt,
			LastSignInAt: du.LastSignInAt,
		}
		if p, ok := byID[du.ID]; ok {
			m.FullName = p.FullName
			m.DisplayName = p.DisplayName
			m.Role, _ = entity.ParseRole(string(p.Role))
		} else {
			m.FullName = du.Metadata.FullName
			m.DisplayName = du.Metadata.DisplayName
			m.Role, _ = entity.ParseRole(string(du.Metadata.Role))
		}
		out = append(out, m)
	}
	return out, nil
}

// Update rewrites the name and role of a user in both stores. The role
// defaults to user when omitted, which deliberately resets admins who do
// not resupply their role. There is no rollback of the identity write
// when the profile write fails; the drift is visible to the next List.
func (u *userAdminUsecase) Update(ctx context.Context, in UpdateInput) (*entity.DirectoryUser, error) {
	userID := strings.TrimSpace(in.UserID)
	fullName := strings.TrimSpace(in.FullName)
	if userID == "" || fullName == "" {
		return nil, domain.ErrMissingFields
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	meta := entity.Metadata{Role: role, FullName: fullName, DisplayName: fullName}

	updated, err := u.directory.UpdateMetadata(ctx, userID, meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthUpdateFailed, err)
	}
	if err := u.profiles.Upsert(ctx, profileFor(userID, updated.Email, meta)); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfileUpdateFailed, err)
	}

	slog.Info("user updated", "user_id", userID, "role", role)
	return updated, nil
}

// Delete removes a user from both stores. An identity record that is
// already gone is tolerated; profile cleanup failures are logged only.
func (u *userAdminUsecase) Delete(ctx context.Context, userID string) (*DeleteResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	res := &DeleteResult{}
	if err := u.directory.DeleteUser(ctx, userID); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrAuthDeleteFailed, err)
		}
		slog.Warn("identity record already absent, cleaning up profile anyway",
			"user_id", userID)
		res.AuthMissing = true
	}

	if err := u.profiles.Delete(ctx, userID); err != nil {
		// Best-effort cleanup: the identity record is gone either way.
		slog.Warn("profile cleanup failed", "user_id", userID, "error", err)
	}

	slog.Info("user deleted", "user_id", userID, "auth_missing", res.AuthMissing)
	return res, nil
}

// isNotFound matches not-found-class errors, including remote errors that
// only carry "not found" in their message text.
func isNotFound(err error) bool {
	if errors.Is(err, domain.ErrUserNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// profileFor builds the profile row mirroring the given metadata.
func profileFor(id, email string, meta entity.Metadata) *entity.Profile {
	return &entity.Profile{
		ID:          id,
		Email:       email,
		FullName:    meta.FullName,
		DisplayName: meta.DisplayName,
		Role:        meta.Role,
	}
}
