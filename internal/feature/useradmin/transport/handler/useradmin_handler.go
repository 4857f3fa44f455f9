// Package handler provides the HTTP handlers for the admin
// user-management endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/useradmin/domain"
	"clinic_backend/internal/feature/useradmin/domain/entity"
	"clinic_backend/internal/feature/useradmin/transport/http/dto"
	"clinic_backend/internal/feature/useradmin/usecase"
)

// UserAdminUsecase defines the user-management operations the handler
// depends on. Interfaces are defined by the consumer (handler), not the
// provider.
type UserAdminUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateResult, error)
	List(ctx context.Context) ([]entity.ManagedUser, error)
	Update(ctx context.Context, in usecase.UpdateInput) (*entity.DirectoryUser, error)
	Delete(ctx context.Context, userID string) (*usecase.DeleteResult, error)
}

// UserAdminHandler translates HTTP requests into usecase calls and maps
// the error taxonomy onto HTTP statuses.
type UserAdminHandler struct {
	uc UserAdminUsecase
}

// NewUserAdminHandler creates a new UserAdminHandler instance.
func NewUserAdminHandler(uc UserAdminUsecase) *UserAdminHandler {
	return &UserAdminHandler{uc: uc}
}

// errStatuses maps taxonomy sentinels to HTTP statuses. The 500-class
// sentinels come first because store errors can wrap more than one
// sentinel (e.g. a misconfiguration surfacing during a create).
var errStatuses = []struct {
	sentinel error
	status   int
}{
	{domain.ErrServerMisconfigured, http.StatusInternalServerError},
	{domain.ErrListFailed, http.StatusInternalServerError},
	{domain.ErrAuthDeleteFailed, http.StatusInternalServerError},
	{domain.ErrMissingFields, http.StatusBadRequest},
	{domain.ErrMissingUserID, http.StatusBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest},
	{domain.ErrInvalidRole, http.StatusBadRequest},
	{domain.ErrWeakPassword, http.StatusBadRequest},
	{domain.ErrAuthCreateFailed, http.StatusBadRequest},
	{domain.ErrAuthUpdateFailed, http.StatusBadRequest},
	{domain.ErrProfileCreateFailed, http.StatusBadRequest},
	{domain.ErrProfileUpdateFailed, http.StatusBadRequest},
}

// writeError renders a usecase error. The error field carries the
// taxonomy label; details carries the full chain when it says more.
func writeError(c *gin.Context, err error) {
	for _, e := range errStatuses {
		if errors.Is(err, e.sentinel) {
			resp := dto.ErrorResponse{Error: e.sentinel.Error()}
			if msg := err.Error(); msg != e.sentinel.Error() {
				resp.Details = msg
			}
			c.JSON(e.status, resp)
			return
		}
	}
	slog.Error("unexpected error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error", Details: err.Error()})
}

// userResponse builds the compact user shape echoed back by mutations.
func userResponse(u *entity.DirectoryUser) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.Metadata.FullName,
		Role:     string(u.Metadata.Role),
	}
}

// createMessage distinguishes a fresh create from an idempotent re-create.
func createMessage(res *usecase.CreateResult) string {
	if res.AlreadyExisted {
		return "User already existed and was updated"
	}
	return "User created successfully"
}

// create runs the shared create path and returns the result, writing the
// error response itself on failure.
func (h *UserAdminHandler) create(c *gin.Context) (*usecase.CreateResult, bool) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create-user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return nil, false
	}
	res, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return res, true
}

// CreateUser handles POST /create-user.
func (h *UserAdminHandler) CreateUser(c *gin.Context) {
	res, ok := h.create(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.CreateUserResponse{
		Success: true,
		Message: createMessage(res),
		User:    userResponse(res.User),
	})
}

// CreateManaged handles POST /manage-users. Same operation as
// CreateUser with the manage-users response envelope.
func (h *UserAdminHandler) CreateManaged(c *gin.Context) {
	res, ok := h.create(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ManageUserResponse{
		User:    userResponse(res.User),
		Message: createMessage(res),
	})
}

// ListUsers handles GET /manage-users.
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.ManagedUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ManagedUserResponse{
			ID:           u.ID,
			Email:        u.Email,
			FullName:     u.FullName,
			DisplayName:  u.DisplayName,
			Role:         string(u.Role),
			Active:       u.Active,
			Confirmed:    u.Confirmed,
			CreatedAt:    u.CreatedAt,
			LastSignInAt: u.LastSignInAt,
		})
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: out})
}

// UpdateUser handles PUT /manage-users.
func (h *UserAdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update-user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	updated, err := h.uc.Update(c.Request.Context(), usecase.UpdateInput{
		UserID:   req.UserID,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ManageUserResponse{
		User:    userResponse(updated),
		Message: "User updated successfully",
	})
}

// DeleteUser handles DELETE /manage-users.
func (h *UserAdminHandler) DeleteUser(c *gin.Context) {
	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("delete-user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	res, err := h.uc.Delete(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	msg := "User deleted successfully"
	if res.AuthMissing {
		msg = "Profile cleaned up; auth record was already absent"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// Options handles CORS-adjacent OPTIONS probes on the function routes.
func (h *UserAdminHandler) Options(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
