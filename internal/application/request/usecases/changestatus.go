package usecases

import (
	"context"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor     actor.Actor
	RequestID uint
	NewStatus string
}

type ChangeStatusResult struct {
	RequestID uint   `json:"request_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	UpdatedAt string `json:"updated_at"`
}

type ChangeStatusUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"request_id", cmd.RequestID, "new_status", cmd.NewStatus, "actor_id", cmd.Actor.ID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("status", err.Error())
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionChangeStatus, req.UserID()) {
		uc.logger.Warnw("change status denied", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError(permission.ActionChangeStatus.String())
	}

	oldStatus := req.Status()

	if err := req.ChangeStatus(newStatus); err != nil {
		uc.logger.Errorw("failed to change request status",
			"request_id", cmd.RequestID, "from", oldStatus, "to", newStatus, "error", err)
		return nil, err
	}

	if oldStatus != req.Status() {
		if err := uc.requestRepo.Update(ctx, req); err != nil {
			uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
			return nil, errors.NewTransportError(err, "failed to update request")
		}
	}

	uc.logger.Infow("request status changed",
		"request_id", req.ID(), "old_status", oldStatus, "new_status", req.Status())

	return &ChangeStatusResult{
		RequestID: req.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: req.Status().String(),
		UpdatedAt: req.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
