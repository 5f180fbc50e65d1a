package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// RequestMapper handles the conversion between Request domain entities and
// persistence models.
type RequestMapper interface {
	ToModel(req *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(req *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:          req.ID(),
		Number:      req.Number(),
		UserID:      req.UserID(),
		Description: req.Description(),
		Priority:    req.Priority().String(),
		Status:      req.Status().String(),
		Version:     req.Version(),
		CreatedAt:   req.CreatedAt().UnixMilli(),
		UpdatedAt:   req.UpdatedAt().UnixMilli(),
	}

	if len(req.Extras()) > 0 {
		extrasJSON, _ := json.Marshal(req.Extras())
		model.Extras = extrasJSON
	}

	if req.ClosedAt() != nil {
		closed := req.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in request %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in request %d: %w", model.ID, err)
	}

	// Unknown extra fields ride along untouched.
	var extras map[string]interface{}
	if len(model.Extras) > 0 {
		if err := json.Unmarshal(model.Extras, &extras); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request extras (id=%d): %w", model.ID, err)
		}
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := biztime.FromMilli(*model.ClosedAt)
		closedAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.Number,
		model.UserID,
		model.Description,
		priority,
		status,
		extras,
		model.Version,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
		closedAt,
	)
}
