package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetRequestWithResponsesQuery struct {
	Actor     actor.Actor
	RequestID uint
}

type GetRequestWithResponsesUseCase struct {
	requestRepo  request.Repository
	responseRepo response.Repository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewGetRequestWithResponsesUseCase(
	requestRepo request.Repository,
	responseRepo response.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetRequestWithResponsesUseCase {
	return &GetRequestWithResponsesUseCase{
		requestRepo:  requestRepo,
		responseRepo: responseRepo,
		markdown:     markdownSvc,
		logger:       logger,
	}
}

func (uc *GetRequestWithResponsesUseCase) Execute(ctx context.Context, query GetRequestWithResponsesQuery) (*dto.RequestWithResponsesDTO, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("requestId", "request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	if !permission.Can(query.Actor, permission.ActionViewRequest, req.UserID()) {
		return nil, errors.NewNotFoundError("request", query.RequestID)
	}

	responses, err := uc.responseRepo.GetByRequestID(ctx, req.ID())
	if err != nil {
		uc.logger.Errorw("failed to get responses", "request_id", query.RequestID, "error", err)
		return nil, errors.NewTransportError(err, "failed to load responses")
	}

	responseDTOs := make([]dto.ResponseDTO, 0, len(responses))
	for _, resp := range responses {
		textHTML, err := uc.markdown.ToHTMLSanitized(resp.Text())
		if err != nil {
			uc.logger.Warnw("failed to render response markdown", "response_id", resp.ID(), "error", err)
			textHTML = ""
		}
		responseDTOs = append(responseDTOs, dto.ToResponseDTO(resp, textHTML))
	}

	return &dto.RequestWithResponsesDTO{
		Request:   dto.ToRequestDTO(req),
		Responses: responseDTOs,
	}, nil
}
