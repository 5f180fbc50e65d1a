package usecases

import (
	"context"

	"helpdesk/internal/application/response/dto"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/domain/view"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListResponsesQuery struct {
	Actor  actor.Actor
	Search string
}

type ListResponsesResult struct {
	Items []dto.ResponseListItemDTO `json:"items"`
	Total int64                     `json:"total"`
}

// ListResponsesUseCase is the staff overview of all responses, joined with
// their requests and responders. Clients see responses only through their own
// tickets, never through this listing.
type ListResponsesUseCase struct {
	responseRepo response.Repository
	requestRepo  request.Repository
	userRepo     user.Repository
	store        *collection.Store[*response.Response]
	logger       logger.Interface
}

func NewListResponsesUseCase(
	responseRepo response.Repository,
	requestRepo request.Repository,
	userRepo user.Repository,
	store *collection.Store[*response.Response],
	logger logger.Interface,
) *ListResponsesUseCase {
	return &ListResponsesUseCase{
		responseRepo: responseRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		store:        store,
		logger:       logger,
	}
}

func (uc *ListResponsesUseCase) Execute(ctx context.Context, query ListResponsesQuery) (*ListResponsesResult, error) {
	if !query.Actor.Role.IsStaff() {
		return nil, errors.NewForbiddenError("list responses")
	}

	responses, err := uc.responseRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list responses", "error", err)
		return nil, errors.NewTransportError(err, "failed to list responses")
	}

	requests, _, err := uc.requestRepo.List(ctx, request.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to list requests for response joins", "error", err)
		return nil, errors.NewTransportError(err, "failed to list requests")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users for response joins", "error", err)
		return nil, errors.NewTransportError(err, "failed to list users")
	}

	if uc.store != nil {
		uc.store.Apply(collection.ReplaceAll(responses))
	}

	items := view.FilterResponses(query.Actor, responses, requests, users, query.Search)

	itemDTOs := make([]dto.ResponseListItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, dto.ToResponseListItemDTO(item))
	}

	return &ListResponsesResult{Items: itemDTOs, Total: int64(len(itemDTOs))}, nil
}
