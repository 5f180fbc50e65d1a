package dto

import (
	"time"

	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/view"
)

type ResponseDTO struct {
	ID        uint      `json:"id"`
	RequestID uint      `json:"request_id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"text"`
	TextHTML  string    `json:"text_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponseListItemDTO is one row of the response overview with its joins
// flattened for the presentation layer.
type ResponseListItemDTO struct {
	ID            uint     `json:"id"`
	RequestID     uint     `json:"request_id"`
	RequestNumber uint     `json:"request_number,omitempty"`
	UserID        uint     `json:"user_id"`
	UserEmail     string   `json:"user_email,omitempty"`
	Text          string   `json:"text"`
	Actions       []string `json:"actions"`
	CreatedAt     string   `json:"created_at"`
}

func ToResponseDTO(resp *response.Response, textHTML string) *ResponseDTO {
	if resp == nil {
		return nil
	}
	return &ResponseDTO{
		ID:        resp.ID(),
		RequestID: resp.RequestID(),
		UserID:    resp.UserID(),
		Text:      resp.Text(),
		TextHTML:  textHTML,
		CreatedAt: resp.CreatedAt(),
		UpdatedAt: resp.UpdatedAt(),
	}
}

func ToResponseListItemDTO(item view.ResponseItem) ResponseListItemDTO {
	actions := make([]string, 0, len(item.Actions))
	for _, a := range item.Actions {
		actions = append(actions, a.String())
	}

	row := ResponseListItemDTO{
		ID:        item.Response.ID(),
		RequestID: item.Response.RequestID(),
		UserID:    item.Response.UserID(),
		Text:      item.Response.Text(),
		Actions:   actions,
		CreatedAt: item.Response.CreatedAt().Format(time.RFC3339),
	}
	if item.Request != nil {
		row.RequestNumber = item.Request.Number()
	}
	if item.User != nil {
		row.UserEmail = item.User.Email().String()
	}
	return row
}
