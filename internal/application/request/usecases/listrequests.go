package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/domain/view"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListRequestsQuery struct {
	Actor        actor.Actor
	Search       string
	StatusFilter string
	OwnerID      uint // staff-only narrowing to one client's tickets
	SortBy       string
	SortOrder    string
}

type ListRequestsResult struct {
	Items []dto.RequestListItemDTO `json:"items"`
	Total int64                    `json:"total"`
}

// ListRequestsUseCase fetches the request collection, replaces the shared
// snapshot and projects it through the view filter. Client actors are
// pre-scoped to their own tickets at the repository level; the filter only
// computes search matches and per-item action sets on top.
type ListRequestsUseCase struct {
	requestRepo request.Repository
	store       *collection.Store[*request.Request]
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	store *collection.Store[*request.Request],
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		store:       store,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	filter := request.Filter{
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Actor.Role.IsClient() {
		ownerID := query.Actor.ID
		filter.OwnerID = &ownerID
	} else if query.OwnerID != 0 {
		filter.OwnerID = &query.OwnerID
	}

	if query.StatusFilter != "" && query.StatusFilter != view.StatusFilterAll {
		status, err := vo.NewStatus(query.StatusFilter)
		if err != nil {
			return nil, errors.NewValidationError("status", err.Error())
		}
		filter.Status = &status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "actor_id", query.Actor.ID, "error", err)
		return nil, errors.NewTransportError(err, "failed to list requests")
	}

	if uc.store != nil {
		uc.store.Apply(collection.ReplaceAll(requests))
	}

	// The status filter already ran in the repository query; the view layer
	// applies the search and computes action sets.
	items := view.FilterRequests(query.Actor, requests, query.Search, view.StatusFilterAll)

	itemDTOs := make([]dto.RequestListItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, dto.ToRequestListItemDTO(item))
	}

	if query.Search != "" {
		total = int64(len(itemDTOs))
	}

	return &ListRequestsResult{Items: itemDTOs, Total: total}, nil
}

// RequestActionsFor exposes the per-item action set for a single request,
// mirroring what the list projection returns.
func RequestActionsFor(a actor.Actor, ownerID uint) []string {
	actions := permission.RequestActions(a, ownerID)
	out := make([]string, 0, len(actions))
	for _, action := range actions {
		out = append(out, action.String())
	}
	return out
}
