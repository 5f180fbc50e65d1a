package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateRequestCommand struct {
	Actor              actor.Actor
	RequestID          uint
	ProblemDescription *string
	Priority           *string
}

type UpdateRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionEditRequest, req.UserID()) {
		uc.logger.Warnw("edit request denied", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError(permission.ActionEditRequest.String())
	}

	if cmd.ProblemDescription != nil {
		if err := req.UpdateDescription(*cmd.ProblemDescription); err != nil {
			return nil, err
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("priority", err.Error())
		}
		if err := req.ChangePriority(priority); err != nil {
			return nil, err
		}
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewTransportError(err, "failed to update request")
	}

	uc.logger.Infow("request updated", "request_id", req.ID())

	return dto.ToRequestDTO(req), nil
}
