package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	Actor actor.Actor
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error) {
	if query.Actor.ID == 0 {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	u, err := uc.userRepo.GetByID(ctx, query.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to load current user", "user_id", query.Actor.ID, "error", err)
		return nil, err
	}

	return dto.ToUserDTO(u), nil
}
