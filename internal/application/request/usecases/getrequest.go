package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetRequestQuery struct {
	Actor     actor.Actor
	RequestID uint
}

type GetRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(query.Actor, permission.ActionViewRequest, req.UserID()) {
		// Hide existence from actors who cannot see the ticket.
		return nil, errors.NewNotFoundError("request", query.RequestID)
	}

	return dto.ToRequestDTO(req), nil
}
