package usecases

import (
	"context"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteRequestCommand struct {
	Actor     actor.Actor
	RequestID uint
}

type DeleteRequestResult struct {
	RequestID uint `json:"request_id"`
}

// Transactor runs a function inside a storage transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteRequestUseCase removes a request together with its responses. Unlike
// the reply protocol, the cascade is transactional: a half-deleted ticket has
// no meaningful observable state.
type DeleteRequestUseCase struct {
	requestRepo  request.Repository
	responseRepo response.Repository
	tx           Transactor
	store        *collection.Store[*request.Request]
	logger       logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.Repository,
	responseRepo response.Repository,
	tx Transactor,
	store *collection.Store[*request.Request],
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo:  requestRepo,
		responseRepo: responseRepo,
		tx:           tx,
		store:        store,
		logger:       logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error) {
	uc.logger.Infow("executing delete request use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionDeleteRequest, req.UserID()) {
		uc.logger.Warnw("delete request denied", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError(permission.ActionDeleteRequest.String())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.responseRepo.DeleteByRequestID(txCtx, req.ID()); err != nil {
			return err
		}
		return uc.requestRepo.Delete(txCtx, req.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewTransportError(err, "failed to delete request")
	}

	if uc.store != nil {
		uc.store.Apply(collection.Remove[*request.Request](req.ID()))
	}

	uc.logger.Infow("request deleted", "request_id", req.ID())

	return &DeleteRequestResult{RequestID: req.ID()}, nil
}
