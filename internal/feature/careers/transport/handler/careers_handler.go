// Package handler provides the HTTP handlers for the careers endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/careers/domain"
	"clinic_backend/internal/feature/careers/domain/entity"
	"clinic_backend/internal/feature/careers/transport/http/dto"
	"clinic_backend/internal/feature/careers/usecase"
)

// CareersUsecase defines the careers operations the handler depends on.
type CareersUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*entity.Application, error)
	List(ctx context.Context) ([]entity.Application, error)
}

// CareersHandler handles careers-form HTTP requests.
type CareersHandler struct {
	uc CareersUsecase
}

// NewCareersHandler creates a new CareersHandler instance.
func NewCareersHandler(uc CareersUsecase) *CareersHandler {
	return &CareersHandler{uc: uc}
}

// Submit handles POST /careers-application. Public: the clinic website
// posts form submissions here directly.
func (h *CareersHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("careers bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	app, err := h.uc.Submit(c.Request.Context(), usecase.SubmitInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Message:  req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("careers submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to store application"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitApplicationResponse{
		Message:     "Application received",
		Application: toResponse(*app),
	})
}

// List handles GET /careers-applications (admin only, guarded upstream).
func (h *CareersHandler) List(c *gin.Context) {
	apps, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("careers listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list applications"})
		return
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: out})
}

func toResponse(a entity.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		Phone:     a.Phone,
		Position:  a.Position,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}
