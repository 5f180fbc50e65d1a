package usecases

import (
	"context"

	"helpdesk/internal/application/response/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetResponseQuery struct {
	Actor      actor.Actor
	ResponseID uint
}

type GetResponseUseCase struct {
	responseRepo response.Repository
	requestRepo  request.Repository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewGetResponseUseCase(
	responseRepo response.Repository,
	requestRepo request.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetResponseUseCase {
	return &GetResponseUseCase{
		responseRepo: responseRepo,
		requestRepo:  requestRepo,
		markdown:     markdownSvc,
		logger:       logger,
	}
}

func (uc *GetResponseUseCase) Execute(ctx context.Context, query GetResponseQuery) (*dto.ResponseDTO, error) {
	if query.ResponseID == 0 {
		return nil, errors.NewValidationError("responseId", "response ID is required")
	}

	resp, err := uc.responseRepo.GetByID(ctx, query.ResponseID)
	if err != nil {
		uc.logger.Errorw("failed to get response", "response_id", query.ResponseID, "error", err)
		return nil, err
	}

	// Visibility follows the parent ticket.
	req, err := uc.requestRepo.GetByID(ctx, resp.RequestID())
	if err != nil {
		uc.logger.Errorw("failed to get parent request", "request_id", resp.RequestID(), "error", err)
		return nil, err
	}
	if !permission.Can(query.Actor, permission.ActionViewRequest, req.UserID()) {
		return nil, errors.NewNotFoundError("response", query.ResponseID)
	}

	textHTML, err := uc.markdown.ToHTMLSanitized(resp.Text())
	if err != nil {
		uc.logger.Warnw("failed to render response markdown", "response_id", resp.ID(), "error", err)
		textHTML = ""
	}

	return dto.ToResponseDTO(resp, textHTML), nil
}
