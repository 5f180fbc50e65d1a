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

type CreateRequestCommand struct {
	Actor              actor.Actor
	OnBehalfOfUserID   uint // admin-only; zero means the actor files for themselves
	ProblemDescription string
	Priority           string
}

type CreateRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing create request use case", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)

	ownerID := cmd.Actor.ID
	if cmd.OnBehalfOfUserID != 0 && cmd.OnBehalfOfUserID != cmd.Actor.ID {
		if !cmd.Actor.Role.IsAdmin() {
			return nil, errors.NewForbiddenError(permission.ActionCreateRequest.String())
		}
		ownerID = cmd.OnBehalfOfUserID
	}

	if !permission.Can(cmd.Actor, permission.ActionCreateRequest, ownerID) {
		uc.logger.Warnw("create request denied", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError(permission.ActionCreateRequest.String())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("priority", err.Error())
	}

	req, err := request.NewRequest(ownerID, cmd.ProblemDescription, priority)
	if err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, errors.NewTransportError(err, "failed to save request")
	}

	uc.logger.Infow("request created", "request_id", req.ID(), "request_number", req.Number(), "owner_id", ownerID)

	return dto.ToRequestDTO(req), nil
}
