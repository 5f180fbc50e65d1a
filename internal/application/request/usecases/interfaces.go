package usecases

import (
	"context"

	"helpdesk/internal/application/request/dto"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ReplyExecutor interface {
	Execute(ctx context.Context, cmd ReplyCommand) (*ReplyResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type GetRequestWithResponsesExecutor interface {
	Execute(ctx context.Context, query GetRequestWithResponsesQuery) (*dto.RequestWithResponsesDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error)
}
