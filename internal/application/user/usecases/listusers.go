package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/domain/view"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor  actor.Actor
	Search string
}

type ListUsersResult struct {
	Items []dto.UserListItemDTO `json:"items"`
	Total int64                 `json:"total"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	store    *collection.Store[*user.User]
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	store *collection.Store[*user.User],
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !permission.Can(query.Actor, permission.ActionManageUsers, 0) {
		return nil, errors.NewForbiddenError(permission.ActionManageUsers.String())
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewTransportError(err, "failed to list users")
	}

	if uc.store != nil {
		uc.store.Apply(collection.ReplaceAll(users))
	}

	items := view.FilterUsers(query.Actor, users, query.Search)

	itemDTOs := make([]dto.UserListItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, dto.ToUserListItemDTO(item))
	}

	return &ListUsersResult{Items: itemDTOs, Total: int64(len(itemDTOs))}, nil
}
