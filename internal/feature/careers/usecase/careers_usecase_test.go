package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic_backend/internal/feature/careers/domain"
	"clinic_backend/internal/feature/careers/domain/entity"
)

// mockApplications is a function-field mock of ApplicationRepository.
type mockApplications struct {
	createFn func(ctx context.Context, a *entity.Application) error
	listFn   func(ctx context.Context) ([]entity.Application, error)

	createCalls int
}

func (m *mockApplications) Create(ctx context.Context, a *entity.Application) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockApplications) List(ctx context.Context) ([]entity.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestCareersUsecase_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      SubmitInput
		wantErr error
	}{
		{
			name:    "missing full name",
			in:      SubmitInput{Email: "jane@clinic.example", Position: "Nurse"},
			wantErr: domain.ErrMissingFields,
		},
		{
			name:    "missing email",
			in:      SubmitInput{FullName: "Jane Doe", Position: "Nurse"},
			wantErr: domain.ErrMissingFields,
		},
		{
			name:    "missing position",
			in:      SubmitInput{FullName: "Jane Doe", Email: "jane@clinic.example"},
			wantErr: domain.ErrMissingFields,
		},
		{
			name:    "whitespace-only fields",
			in:      SubmitInput{FullName: "  ", Email: "jane@clinic.example", Position: "\t"},
			wantErr: domain.ErrMissingFields,
		},
		{
			name:    "malformed email",
			in:      SubmitInput{FullName: "Jane Doe", Email: "not-an-email", Position: "Nurse"},
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockApplications{}
			uc := NewCareersUsecase(repo)

			_, err := uc.Submit(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.createCalls, "validation failures must not hit the store")
		})
	}
}

func TestCareersUsecase_Submit(t *testing.T) {
	t.Run("stores a trimmed application with a fresh id", func(t *testing.T) {
		var stored *entity.Application
		repo := &mockApplications{
			createFn: func(_ context.Context, a *entity.Application) error {
				stored = a
				return nil
			},
		}
		uc := NewCareersUsecase(repo)

		app, err := uc.Submit(context.Background(), SubmitInput{
			FullName: "  Jane Doe ",
			Email:    " jane@clinic.example ",
			Phone:    " 555-0100 ",
			Position: " Nurse ",
			Message:  " Available from March. ",
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, app.ID)
		assert.Equal(t, "Jane Doe", stored.FullName)
		assert.Equal(t, "jane@clinic.example", stored.Email)
		assert.Equal(t, "555-0100", stored.Phone)
		assert.Equal(t, "Nurse", stored.Position)
		assert.Equal(t, "Available from March.", stored.Message)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := &mockApplications{
			createFn: func(_ context.Context, _ *entity.Application) error {
				return errors.New("connection refused")
			},
		}
		uc := NewCareersUsecase(repo)

		_, err := uc.Submit(context.Background(), SubmitInput{
			FullName: "Jane Doe", Email: "jane@clinic.example", Position: "Nurse",
		})

		assert.Error(t, err)
	})
}

func TestCareersUsecase_List(t *testing.T) {
	expected := []entity.Application{{ID: "a1", FullName: "Jane Doe"}}
	repo := &mockApplications{
		listFn: func(_ context.Context) ([]entity.Application, error) {
			return expected, nil
		},
	}
	uc := NewCareersUsecase(repo)

	apps, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, apps)
}
