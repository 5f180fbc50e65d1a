package usecases

import (
	"context"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  actor.Actor
	UserID uint
}

type DeleteUserResult struct {
	UserID uint `json:"user_id"`
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	store    *collection.Store[*user.User]
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	store *collection.Store[*user.User],
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "actor_id", cmd.Actor.ID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("userId", "user ID is required")
	}

	if !permission.Can(cmd.Actor, permission.ActionManageUsers, 0) {
		return nil, errors.NewForbiddenError(permission.ActionManageUsers.String())
	}
	if cmd.Actor.ID == cmd.UserID {
		return nil, errors.NewValidationError("userId", "cannot delete own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewTransportError(err, "failed to delete user")
	}

	if uc.store != nil {
		uc.store.Apply(collection.Remove[*user.User](cmd.UserID))
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)

	return &DeleteUserResult{UserID: cmd.UserID}, nil
}
