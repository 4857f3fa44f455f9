// Package domain defines domain-level errors for the useradmin feature.
package domain

import "errors"

// Validation and authorization errors. These are detected locally and
// returned before any remote store is called.
var (
	// ErrUnauthenticated indicates a missing, malformed or unresolvable
	// bearer token.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates an authenticated caller whose role is not admin.
	ErrForbidden = errors.New("admin access required")

	// ErrMissingFields indicates that one or more required fields are absent.
	ErrMissingFields = errors.New("email, password and full_name are required")

	// ErrMissingUserID indicates a delete request without a user ID.
	ErrMissingUserID = errors.New("userId is required")

	// ErrInvalidEmail indicates an email that does not match the basic
	// local@domain.tld pattern.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidRole indicates a role outside the admin/user set.
	ErrInvalidRole = errors.New("role must be admin or user")

	// ErrWeakPassword indicates a password shorter than the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

// Remote-store errors. The underlying store message is wrapped alongside
// these so the transport layer can forward it for operator diagnosis.
var (
	// ErrUserNotFound indicates that no identity record matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrAuthCreateFailed indicates the identity service rejected a create.
	ErrAuthCreateFailed = errors.New("failed to create auth user")

	// ErrAuthUpdateFailed indicates the identity service rejected a
	// metadata update.
	ErrAuthUpdateFailed = errors.New("failed to update auth user")

	// ErrAuthDeleteFailed indicates a non-recoverable identity delete
	// failure. Not-found-class failures are tolerated and never carry this.
	ErrAuthDeleteFailed = errors.New("failed to delete auth user")

	// ErrProfileCreateFailed indicates the profile upsert during create
	// failed. The create path compensates by removing the identity record.
	ErrProfileCreateFailed = errors.New("failed to save user profile")

	// ErrProfileUpdateFailed indicates the profile upsert during update
	// failed. The already-applied identity write is NOT rolled back.
	ErrProfileUpdateFailed = errors.New("failed to update user profile")

	// ErrListFailed indicates a read failure on either store while listing.
	ErrListFailed = errors.New("failed to list users")

	// ErrServerMisconfigured indicates missing identity-service
	// configuration. Returned before any store access is attempted.
	ErrServerMisconfigured = errors.New("server misconfigured")
)
