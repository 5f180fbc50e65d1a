package response

import "context"

type Repository interface {
	Save(ctx context.Context, resp *Response) error
	Update(ctx context.Context, resp *Response) error
	Delete(ctx context.Context, responseID uint) error
	DeleteByRequestID(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, responseID uint) (*Response, error)
	GetByRequestID(ctx context.Context, requestID uint) ([]*Response, error)
	List(ctx context.Context) ([]*Response, error)
}
