package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
)

func TestDeleteRequestUseCase_Execute_CascadesResponses(t *testing.T) {
	existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
	var deletedResponsesFor, deletedRequest uint

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedRequest = id
			return nil
		},
	}
	responseRepo := &mockResponseRepository{
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			deletedResponsesFor = requestID
			return nil
		},
	}

	store := requestStore()
	store.Apply(collection.Upsert(existing))

	uc := NewDeleteRequestUseCase(requestRepo, responseRepo, &mockTransactor{}, store, &mockLogger{})
	result, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.Actor{ID: 42, Role: actor.RoleClient},
		RequestID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.RequestID)
	assert.Equal(t, uint(1), deletedResponsesFor)
	assert.Equal(t, uint(1), deletedRequest)
	assert.Zero(t, store.Len())
}

func TestDeleteRequestUseCase_Execute_NonOwnerClientForbidden(t *testing.T) {
	existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return existing, nil
		},
	}

	uc := NewDeleteRequestUseCase(requestRepo, &mockResponseRepository{}, &mockTransactor{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.Actor{ID: 43, Role: actor.RoleClient},
		RequestID: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteRequestUseCase_Execute_SupportForbidden(t *testing.T) {
	existing := reconstructRequest(t, 1, 7, 42, vo.StatusOpen)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return existing, nil
		},
	}

	uc := NewDeleteRequestUseCase(requestRepo, &mockResponseRepository{}, &mockTransactor{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteRequestCommand{
		Actor:     actor.Actor{ID: 5, Role: actor.RoleSupport},
		RequestID: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
