package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type ReplyCommand struct {
	Actor     actor.Actor
	RequestID uint
	Text      string
}

type ReplyResult struct {
	Response dto.ResponseDTO `json:"response"`
	Request  *dto.RequestDTO `json:"request"`
}

// ReplyNotifier delivers a reply notification to the ticket owner. Delivery
// is best effort and never fails the reply itself.
type ReplyNotifier interface {
	NotifyReply(ctx context.Context, recipient string, requestNumber uint, responseText string) error
}

// ReplyUseCase attaches a response to a request and advances an open request
// to in_progress. The two writes are deliberately not transactional: the
// response save and the status update are separate backend calls, and a
// failed second step leaves the saved response in place. Callers observing a
// transport error must re-fetch the request to see its true status.
type ReplyUseCase struct {
	requestRepo  request.Repository
	responseRepo response.Repository
	userRepo     user.Repository
	markdown     markdown.Service
	notifier     ReplyNotifier
	logger       logger.Interface
}

func NewReplyUseCase(
	requestRepo request.Repository,
	responseRepo response.Repository,
	userRepo user.Repository,
	markdownSvc markdown.Service,
	notifier ReplyNotifier,
	logger logger.Interface,
) *ReplyUseCase {
	return &ReplyUseCase{
		requestRepo:  requestRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
		markdown:     markdownSvc,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ReplyUseCase) Execute(ctx context.Context, cmd ReplyCommand) (*ReplyResult, error) {
	uc.logger.Infow("executing reply use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionReply, req.UserID()) {
		uc.logger.Warnw("reply denied", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError(permission.ActionReply.String())
	}

	resp, err := response.NewResponse(req.ID(), cmd.Actor.ID, cmd.Text)
	if err != nil {
		return nil, err
	}

	if err := uc.responseRepo.Save(ctx, resp); err != nil {
		uc.logger.Errorw("failed to save response", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewTransportError(err, "failed to save response")
	}

	if req.Status().IsOpen() {
		if err := req.ChangeStatus(vo.StatusInProgress); err != nil {
			// unreachable given the transition table, but surfaced if it happens
			return nil, err
		}
		if err := uc.requestRepo.Update(ctx, req); err != nil {
			// The response is already persisted. Surface the failed second
			// step without rolling back; the caller must re-fetch.
			uc.logger.Errorw("response saved but status update failed",
				"request_id", cmd.RequestID, "response_id", resp.ID(), "error", err)
			return nil, errors.NewTransportError(err, "response saved but status update failed")
		}
	}

	uc.notifyOwner(ctx, req, resp)

	textHTML, err := uc.markdown.ToHTMLSanitized(resp.Text())
	if err != nil {
		uc.logger.Warnw("failed to render response markdown", "response_id", resp.ID(), "error", err)
		textHTML = ""
	}

	uc.logger.Infow("reply attached",
		"request_id", req.ID(), "response_id", resp.ID(), "status", req.Status())

	return &ReplyResult{
		Response: dto.ToResponseDTO(resp, textHTML),
		Request:  dto.ToRequestDTO(req),
	}, nil
}

// notifyOwner emails the ticket owner about a staff reply. Owner follow-ups
// notify nobody.
func (uc *ReplyUseCase) notifyOwner(ctx context.Context, req *request.Request, resp *response.Response) {
	if uc.notifier == nil || resp.UserID() == req.UserID() {
		return
	}

	owner, err := uc.userRepo.GetByID(ctx, req.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load request owner for notification",
			"request_id", req.ID(), "owner_id", req.UserID(), "error", err)
		return
	}

	if err := uc.notifier.NotifyReply(ctx, owner.Email().String(), req.Number(), resp.Text()); err != nil {
		uc.logger.Warnw("failed to send reply notification",
			"request_id", req.ID(), "recipient", owner.Email().String(), "error", err)
	}
}
