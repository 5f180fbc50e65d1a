package usecases

import (
	"context"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteResponseCommand struct {
	Actor      actor.Actor
	ResponseID uint
}

type DeleteResponseResult struct {
	ResponseID uint `json:"response_id"`
}

type DeleteResponseUseCase struct {
	responseRepo response.Repository
	logger       logger.Interface
}

func NewDeleteResponseUseCase(
	responseRepo response.Repository,
	logger logger.Interface,
) *DeleteResponseUseCase {
	return &DeleteResponseUseCase{
		responseRepo: responseRepo,
		logger:       logger,
	}
}

func (uc *DeleteResponseUseCase) Execute(ctx context.Context, cmd DeleteResponseCommand) (*DeleteResponseResult, error) {
	uc.logger.Infow("executing delete response use case", "response_id", cmd.ResponseID, "actor_id", cmd.Actor.ID)

	if cmd.ResponseID == 0 {
		return nil, errors.NewValidationError("responseId", "response ID is required")
	}

	resp, err := uc.responseRepo.GetByID(ctx, cmd.ResponseID)
	if err != nil {
		uc.logger.Errorw("failed to get response", "response_id", cmd.ResponseID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionDeleteResponse, resp.UserID()) {
		uc.logger.Warnw("delete response denied", "response_id", cmd.ResponseID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError(permission.ActionDeleteResponse.String())
	}

	if err := uc.responseRepo.Delete(ctx, resp.ID()); err != nil {
		uc.logger.Errorw("failed to delete response", "response_id", cmd.ResponseID, "error", err)
		return nil, errors.NewTransportError(err, "failed to delete response")
	}

	uc.logger.Infow("response deleted", "response_id", resp.ID())

	return &DeleteResponseResult{ResponseID: resp.ID()}, nil
}
