package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateRequestUseCase_Execute(t *testing.T) {
	newUseCase := func(existing *request.Request) (*UpdateRequestUseCase, *bool) {
		updated := false
		repo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, req *request.Request) error {
				updated = true
				return nil
			},
		}
		return NewUpdateRequestUseCase(repo, &mockLogger{}), &updated
	}

	t.Run("owner edits description without touching status", func(t *testing.T) {
		existing := reconstructRequest(t, 1, 7, 42, vo.StatusInProgress)
		uc, updated := newUseCase(existing)

		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			Actor:              actor.Actor{ID: 42, Role: actor.RoleClient},
			RequestID:          1,
			ProblemDescription: strPtr("printer still on fire"),
		})

		require.NoError(t, err)
		assert.True(t, *updated)
		assert.Equal(t, "printer still on fire", result.ProblemDescription)
		assert.Equal(t, "in_progress", result.Status)
	})

	t.Run("priority change alone", func(t *testing.T) {
		existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
		uc, _ := newUseCase(existing)

		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			Actor:     actor.Actor{ID: 1, Role: actor.RoleAdmin},
			RequestID: 1,
			Priority:  strPtr("high"),
		})

		require.NoError(t, err)
		assert.Equal(t, "high", result.Priority)
	})

	t.Run("support may not edit", func(t *testing.T) {
		existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
		uc, updated := newUseCase(existing)

		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			Actor:              actor.Actor{ID: 5, Role: actor.RoleSupport},
			RequestID:          1,
			ProblemDescription: strPtr("rewritten"),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, *updated)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
		uc, updated := newUseCase(existing)

		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			Actor:              actor.Actor{ID: 42, Role: actor.RoleClient},
			RequestID:          1,
			ProblemDescription: strPtr(""),
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, *updated)
	})
}
