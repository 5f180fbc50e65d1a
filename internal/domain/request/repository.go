package request

import (
	"context"

	vo "helpdesk/internal/domain/request/valueobjects"
)

type Repository interface {
	// Save persists a new request and assigns its ID and sequential number.
	Save(ctx context.Context, req *Request) error
	Update(ctx context.Context, req *Request) error
	Delete(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, requestID uint) (*Request, error)
	GetByNumber(ctx context.Context, number uint) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)
}

// Filter narrows List results. Nil fields are pass-through. OwnerID is how
// client lists are pre-scoped to their own tickets.
type Filter struct {
	Status    *vo.Status
	Priority  *vo.Priority
	OwnerID   *uint
	SortBy    string
	SortOrder string
}
