package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/request"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
)

func TestCreateRequestUseCase_Execute(t *testing.T) {
	t.Run("client files own ticket", func(t *testing.T) {
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				if err := req.SetID(1); err != nil {
					return err
				}
				return req.SetNumber(7)
			},
		}

		uc := NewCreateRequestUseCase(requestRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor:              actor.Actor{ID: 42, Role: actor.RoleClient},
			ProblemDescription: "printer is on fire",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, uint(7), result.RequestNumber)
		assert.Equal(t, uint(42), result.UserID)
		assert.Equal(t, "open", result.Status)
		assert.Equal(t, "medium", result.Priority)
	})

	t.Run("admin files on behalf of a client", func(t *testing.T) {
		var saved *request.Request
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				saved = req
				if err := req.SetID(2); err != nil {
					return err
				}
				return req.SetNumber(8)
			},
		}

		uc := NewCreateRequestUseCase(requestRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor:              actor.Actor{ID: 1, Role: actor.RoleAdmin},
			OnBehalfOfUserID:   42,
			ProblemDescription: "cannot log in",
			Priority:           "high",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.UserID)
		assert.Equal(t, "high", result.Priority)
		require.NotNil(t, saved)
		assert.Equal(t, uint(42), saved.UserID())
	})

	t.Run("support cannot open tickets", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor:              actor.Actor{ID: 5, Role: actor.RoleSupport},
			ProblemDescription: "printer is on fire",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("client cannot file for someone else", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor:              actor.Actor{ID: 42, Role: actor.RoleClient},
			OnBehalfOfUserID:   43,
			ProblemDescription: "printer is on fire",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("empty description is a validation error", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor: actor.Actor{ID: 42, Role: actor.RoleClient},
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRequestCommand{
			Actor:              actor.Actor{ID: 42, Role: actor.RoleClient},
			ProblemDescription: "printer is on fire",
			Priority:           "urgent",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
