package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/request/usecases"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
)

type CreateRequestRequest struct {
	ProblemDescription string `json:"problem_description" binding:"required,max=5000"`
	Priority           string `json:"priority" binding:"required,oneof=low medium high"`
	OnBehalfOfUserID   uint   `json:"on_behalf_of_user_id"`
}

func (r *CreateRequestRequest) ToCommand(a actor.Actor) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Actor:              a,
		OnBehalfOfUserID:   r.OnBehalfOfUserID,
		ProblemDescription: r.ProblemDescription,
		Priority:           r.Priority,
	}
}

type UpdateRequestRequest struct {
	ProblemDescription *string `json:"problem_description" binding:"omitempty,max=5000"`
	Priority           *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r *UpdateRequestRequest) ToCommand(a actor.Actor, requestID uint) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		Actor:              a,
		RequestID:          requestID,
		ProblemDescription: r.ProblemDescription,
		Priority:           r.Priority,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed"`
}

type ReplyRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type ListRequestsRequest struct {
	Search       string
	StatusFilter string
	OwnerID      uint
	SortBy       string
	SortOrder    string
}

func (r *ListRequestsRequest) ToQuery(a actor.Actor) usecases.ListRequestsQuery {
	return usecases.ListRequestsQuery{
		Actor:        a,
		Search:       r.Search,
		StatusFilter: r.StatusFilter,
		OwnerID:      r.OwnerID,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
	}
}

func parseListRequestsRequest(c *gin.Context) (*ListRequestsRequest, error) {
	req := &ListRequestsRequest{
		Search:       c.Query("search"),
		StatusFilter: c.Query("status"),
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
	}

	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := strconv.ParseUint(ownerIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("owner_id", "invalid owner_id")
		}
		req.OwnerID = uint(ownerID)
	}

	return req, nil
}
