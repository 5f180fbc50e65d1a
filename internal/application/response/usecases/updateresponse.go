package usecases

import (
	"context"

	"helpdesk/internal/application/response/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type UpdateResponseCommand struct {
	Actor      actor.Actor
	ResponseID uint
	Text       string
}

type UpdateResponseUseCase struct {
	responseRepo response.Repository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewUpdateResponseUseCase(
	responseRepo response.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *UpdateResponseUseCase {
	return &UpdateResponseUseCase{
		responseRepo: responseRepo,
		markdown:     markdownSvc,
		logger:       logger,
	}
}

func (uc *UpdateResponseUseCase) Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error) {
	uc.logger.Infow("executing update response use case", "response_id", cmd.ResponseID, "actor_id", cmd.Actor.ID)

	if cmd.ResponseID == 0 {
		return nil, errors.NewValidationError("responseId", "response ID is required")
	}

	resp, err := uc.responseRepo.GetByID(ctx, cmd.ResponseID)
	if err != nil {
		uc.logger.Errorw("failed to get response", "response_id", cmd.ResponseID, "error", err)
		return nil, err
	}

	if !permission.Can(cmd.Actor, permission.ActionEditResponse, resp.UserID()) {
		uc.logger.Warnw("edit response denied", "response_id", cmd.ResponseID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError(permission.ActionEditResponse.String())
	}

	if err := resp.UpdateText(cmd.Text); err != nil {
		return nil, err
	}

	if err := uc.responseRepo.Update(ctx, resp); err != nil {
		uc.logger.Errorw("failed to update response", "response_id", cmd.ResponseID, "error", err)
		return nil, errors.NewTransportError(err, "failed to update response")
	}

	textHTML, err := uc.markdown.ToHTMLSanitized(resp.Text())
	if err != nil {
		uc.logger.Warnw("failed to render response markdown", "response_id", resp.ID(), "error", err)
		textHTML = ""
	}

	uc.logger.Infow("response updated", "response_id", resp.ID())

	return dto.ToResponseDTO(resp, textHTML), nil
}
