package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/services/markdown"
)

func reconstructResponse(t *testing.T, id, requestID, userID uint, text string) *response.Response {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	resp, err := response.ReconstructResponse(id, requestID, userID, text, now, now)
	require.NoError(t, err)
	return resp
}

func reconstructRequest(t *testing.T, id, number, userID uint) *request.Request {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	req, err := request.ReconstructRequest(id, number, userID, "printer is on fire", vo.PriorityMedium, vo.StatusInProgress, nil, 1, now, now, nil)
	require.NoError(t, err)
	return req
}

func reconstructUser(t *testing.T, id uint, email string, role actor.Role) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	now := time.Now()
	u, err := user.ReconstructUser(id, "Test", "User", addr, role, "hash", now, now)
	require.NoError(t, err)
	return u
}

func TestUpdateResponseUseCase_Execute(t *testing.T) {
	newUseCase := func(existing *response.Response) (*UpdateResponseUseCase, *bool) {
		updated := false
		repo := &mockResponseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*response.Response, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, resp *response.Response) error {
				updated = true
				return nil
			},
		}
		return NewUpdateResponseUseCase(repo, markdown.NewService(), &mockLogger{}), &updated
	}

	t.Run("support edits own response", func(t *testing.T) {
		existing := reconstructResponse(t, 10, 1, 5, "original")
		uc, updated := newUseCase(existing)

		result, err := uc.Execute(context.Background(), UpdateResponseCommand{
			Actor:      actor.Actor{ID: 5, Role: actor.RoleSupport},
			ResponseID: 10,
			Text:       "edited",
		})

		require.NoError(t, err)
		assert.True(t, *updated)
		assert.Equal(t, "edited", result.Text)
	})

	t.Run("support may not edit a colleague's response", func(t *testing.T) {
		existing := reconstructResponse(t, 10, 1, 6, "original")
		uc, updated := newUseCase(existing)

		_, err := uc.Execute(context.Background(), UpdateResponseCommand{
			Actor:      actor.Actor{ID: 5, Role: actor.RoleSupport},
			ResponseID: 10,
			Text:       "edited",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, *updated)
	})

	t.Run("admin edits anyone's response", func(t *testing.T) {
		existing := reconstructResponse(t, 10, 1, 5, "original")
		uc, updated := newUseCase(existing)

		_, err := uc.Execute(context.Background(), UpdateResponseCommand{
			Actor:      actor.Actor{ID: 1, Role: actor.RoleAdmin},
			ResponseID: 10,
			Text:       "edited",
		})

		require.NoError(t, err)
		assert.True(t, *updated)
	})

	t.Run("client may not edit even own follow-up", func(t *testing.T) {
		existing := reconstructResponse(t, 10, 1, 42, "original")
		uc, _ := newUseCase(existing)

		_, err := uc.Execute(context.Background(), UpdateResponseCommand{
			Actor:      actor.Actor{ID: 42, Role: actor.RoleClient},
			ResponseID: 10,
			Text:       "edited",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestDeleteResponseUseCase_Execute(t *testing.T) {
	existing := reconstructResponse(t, 10, 1, 5, "obsolete")
	deleted := uint(0)
	repo := &mockResponseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*response.Response, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	uc := NewDeleteResponseUseCase(repo, &mockLogger{})

	t.Run("owner support deletes", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), DeleteResponseCommand{
			Actor:      actor.Actor{ID: 5, Role: actor.RoleSupport},
			ResponseID: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(10), result.ResponseID)
		assert.Equal(t, uint(10), deleted)
	})

	t.Run("client forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteResponseCommand{
			Actor:      actor.Actor{ID: 42, Role: actor.RoleClient},
			ResponseID: 10,
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestListResponsesUseCase_Execute(t *testing.T) {
	responseRepo := &mockResponseRepository{
		ListFunc: func(ctx context.Context) ([]*response.Response, error) {
			return []*response.Response{
				reconstructResponse(t, 10, 1, 5, "Please try restarting."),
				reconstructResponse(t, 11, 1, 42, "Still broken."),
			}, nil
		},
	}
	requestRepo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
			return []*request.Request{reconstructRequest(t, 1, 7, 42)}, 1, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				reconstructUser(t, 5, "agent@helpdesk.example", actor.RoleSupport),
				reconstructUser(t, 42, "ivan@example.com", actor.RoleClient),
			}, nil
		},
	}

	store := collection.NewStore(func(r *response.Response) uint { return r.ID() })
	uc := NewListResponsesUseCase(responseRepo, requestRepo, userRepo, store, &mockLogger{})

	t.Run("joins and snapshot", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListResponsesQuery{
			Actor: actor.Actor{ID: 1, Role: actor.RoleAdmin},
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, uint(7), result.Items[0].RequestNumber)
		assert.Equal(t, "agent@helpdesk.example", result.Items[0].UserEmail)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("search by responder email", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListResponsesQuery{
			Actor:  actor.Actor{ID: 1, Role: actor.RoleAdmin},
			Search: "IVAN",
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, uint(11), result.Items[0].ID)
	})

	t.Run("clients are forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListResponsesQuery{
			Actor: actor.Actor{ID: 42, Role: actor.RoleClient},
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
