package usecases

import (
	"context"

	"helpdesk/internal/application/response/dto"
)

type ListResponsesExecutor interface {
	Execute(ctx context.Context, query ListResponsesQuery) (*ListResponsesResult, error)
}

type GetResponseExecutor interface {
	Execute(ctx context.Context, query GetResponseQuery) (*dto.ResponseDTO, error)
}

type UpdateResponseExecutor interface {
	Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error)
}

type DeleteResponseExecutor interface {
	Execute(ctx context.Context, cmd DeleteResponseCommand) (*DeleteResponseResult, error)
}
