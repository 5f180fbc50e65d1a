package dto

import (
	"time"

	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/view"
)

type RequestDTO struct {
	ID                 uint                   `json:"id"`
	RequestNumber      uint                   `json:"request_number"`
	UserID             uint                   `json:"user_id"`
	ProblemDescription string                 `json:"problem_description"`
	Priority           string                 `json:"priority"`
	Status             string                 `json:"status"`
	Extras             map[string]interface{} `json:"extras,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	ClosedAt           *time.Time             `json:"closed_at,omitempty"`
}

type RequestListItemDTO struct {
	ID                 uint     `json:"id"`
	RequestNumber      uint     `json:"request_number"`
	UserID             uint     `json:"user_id"`
	ProblemDescription string   `json:"problem_description"`
	Priority           string   `json:"priority"`
	Status             string   `json:"status"`
	Actions            []string `json:"actions"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type ResponseDTO struct {
	ID        uint      `json:"id"`
	RequestID uint      `json:"request_id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"text"`
	TextHTML  string    `json:"text_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RequestWithResponsesDTO struct {
	Request   *RequestDTO   `json:"request"`
	Responses []ResponseDTO `json:"responses"`
}

func ToRequestDTO(req *request.Request) *RequestDTO {
	if req == nil {
		return nil
	}
	return &RequestDTO{
		ID:                 req.ID(),
		RequestNumber:      req.Number(),
		UserID:             req.UserID(),
		ProblemDescription: req.Description(),
		Priority:           req.Priority().String(),
		Status:             req.Status().String(),
		Extras:             req.Extras(),
		CreatedAt:          req.CreatedAt(),
		UpdatedAt:          req.UpdatedAt(),
		ClosedAt:           req.ClosedAt(),
	}
}

func ToRequestListItemDTO(item view.RequestItem) RequestListItemDTO {
	req := item.Request
	actions := make([]string, 0, len(item.Actions))
	for _, a := range item.Actions {
		actions = append(actions, a.String())
	}
	return RequestListItemDTO{
		ID:                 req.ID(),
		RequestNumber:      req.Number(),
		UserID:             req.UserID(),
		ProblemDescription: req.Description(),
		Priority:           req.Priority().String(),
		Status:             req.Status().String(),
		Actions:            actions,
		CreatedAt:          req.CreatedAt().Format(time.RFC3339),
		UpdatedAt:          req.UpdatedAt().Format(time.RFC3339),
	}
}

func ToResponseDTO(resp *response.Response, textHTML string) ResponseDTO {
	return ResponseDTO{
		ID:        resp.ID(),
		RequestID: resp.RequestID(),
		UserID:    resp.UserID(),
		Text:      resp.Text(),
		TextHTML:  textHTML,
		CreatedAt: resp.CreatedAt(),
		UpdatedAt: resp.UpdatedAt(),
	}
}
