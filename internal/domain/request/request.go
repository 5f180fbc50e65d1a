package request

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

const maxDescriptionLength = 5000

// Request is the support ticket aggregate. Status changes go through
// ChangeStatus, which enforces the transition table; callers are responsible
// for checking the permission matrix before invoking mutations.
type Request struct {
	id          uint
	number      uint
	userID      uint
	description string
	priority    vo.Priority
	status      vo.Status
	extras      map[string]interface{}
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
}

func NewRequest(userID uint, description string, priority vo.Priority) (*Request, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(description) == 0 {
		return nil, errors.NewValidationError("problemDescription", "problem description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, errors.NewValidationError("problemDescription",
			fmt.Sprintf("problem description exceeds maximum length of %d characters", maxDescriptionLength))
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("priority", fmt.Sprintf("invalid priority: %s", priority))
	}

	now := biztime.NowUTC()
	return &Request{
		userID:      userID,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		extras:      make(map[string]interface{}),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(
	id uint,
	number uint,
	userID uint,
	description string,
	priority vo.Priority,
	status vo.Status,
	extras map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if extras == nil {
		extras = make(map[string]interface{})
	}

	return &Request{
		id:          id,
		number:      number,
		userID:      userID,
		description: description,
		priority:    priority,
		status:      status,
		extras:      extras,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) Number() uint {
	return r.number
}

func (r *Request) UserID() uint {
	return r.userID
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) Priority() vo.Priority {
	return r.priority
}

func (r *Request) Status() vo.Status {
	return r.status
}

func (r *Request) Extras() map[string]interface{} {
	extrasCopy := make(map[string]interface{}, len(r.extras))
	for k, v := range r.extras {
		extrasCopy[k] = v
	}
	return extrasCopy
}

func (r *Request) Version() int {
	return r.version
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) ClosedAt() *time.Time {
	return r.closedAt
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetNumber assigns the sequential human-facing number. It is immutable once
// assigned.
func (r *Request) SetNumber(number uint) error {
	if r.number != 0 {
		return fmt.Errorf("request number is already set")
	}
	if number == 0 {
		return fmt.Errorf("request number cannot be zero")
	}
	r.number = number
	return nil
}

// ChangeStatus moves the request to newStatus. A transition to the current
// status is an idempotent no-op; a transition not in the table fails with an
// invalid-transition error and leaves state unchanged.
func (r *Request) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return errors.NewValidationError("status", fmt.Sprintf("invalid status: %s", newStatus))
	}

	if r.status == newStatus {
		return nil
	}

	if !r.status.CanTransitionTo(newStatus) {
		return errors.NewInvalidTransitionError(r.status.String(), newStatus.String())
	}

	r.status = newStatus
	r.updatedAt = biztime.NowUTC()
	r.version++

	if newStatus.IsClosed() {
		now := biztime.NowUTC()
		r.closedAt = &now
	} else {
		r.closedAt = nil
	}

	return nil
}

// UpdateDescription edits the problem description without touching status.
func (r *Request) UpdateDescription(description string) error {
	if len(description) == 0 {
		return errors.NewValidationError("problemDescription", "problem description is required")
	}
	if len(description) > maxDescriptionLength {
		return errors.NewValidationError("problemDescription",
			fmt.Sprintf("problem description exceeds maximum length of %d characters", maxDescriptionLength))
	}

	r.description = description
	r.updatedAt = biztime.NowUTC()
	r.version++
	return nil
}

// ChangePriority edits the priority without touching status.
func (r *Request) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return errors.NewValidationError("priority", fmt.Sprintf("invalid priority: %s", newPriority))
	}

	if r.priority == newPriority {
		return nil
	}

	r.priority = newPriority
	r.updatedAt = biztime.NowUTC()
	r.version++
	return nil
}

// SetExtras replaces the opaque pass-through fields carried alongside the
// known attributes.
func (r *Request) SetExtras(extras map[string]interface{}) {
	if extras == nil {
		extras = make(map[string]interface{})
	}
	r.extras = extras
}
