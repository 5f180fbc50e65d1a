package response

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

const maxTextLength = 5000

// Response is a reply attached to a request. The request reference is
// immutable after creation; the user ID records the responder, whether staff
// or the ticket owner following up.
type Response struct {
	id        uint
	requestID uint
	userID    uint
	text      string
	createdAt time.Time
	updatedAt time.Time
}

func NewResponse(requestID, userID uint, text string) (*Response, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(text) == 0 {
		return nil, errors.NewValidationError("responseText", "response text is required")
	}
	if len(text) > maxTextLength {
		return nil, errors.NewValidationError("responseText",
			fmt.Sprintf("response text exceeds maximum length of %d characters", maxTextLength))
	}

	now := biztime.NowUTC()
	return &Response{
		requestID: requestID,
		userID:    userID,
		text:      text,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructResponse(
	id uint,
	requestID uint,
	userID uint,
	text string,
	createdAt, updatedAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Response{
		id:        id,
		requestID: requestID,
		userID:    userID,
		text:      text,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) RequestID() uint {
	return r.requestID
}

func (r *Response) UserID() uint {
	return r.userID
}

func (r *Response) Text() string {
	return r.text
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateText edits the response body.
func (r *Response) UpdateText(text string) error {
	if len(text) == 0 {
		return errors.NewValidationError("responseText", "response text is required")
	}
	if len(text) > maxTextLength {
		return errors.NewValidationError("responseText",
			fmt.Sprintf("response text exceeds maximum length of %d characters", maxTextLength))
	}

	r.text = text
	r.updatedAt = biztime.NowUTC()
	return nil
}
