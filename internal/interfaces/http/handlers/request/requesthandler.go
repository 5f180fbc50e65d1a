package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/request/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC usecases.CreateRequestExecutor
	updateRequestUC usecases.UpdateRequestExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	replyUC         usecases.ReplyExecutor
	getRequestUC    usecases.GetRequestExecutor
	getWithRespUC   usecases.GetRequestWithResponsesExecutor
	listRequestsUC  usecases.ListRequestsExecutor
	deleteRequestUC usecases.DeleteRequestExecutor
	logger          logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	replyUC usecases.ReplyExecutor,
	getRequestUC usecases.GetRequestExecutor,
	getWithRespUC usecases.GetRequestWithResponsesExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC: createRequestUC,
		updateRequestUC: updateRequestUC,
		changeStatusUC:  changeStatusUC,
		replyUC:         replyUC,
		getRequestUC:    getRequestUC,
		getWithRespUC:   getWithRespUC,
		listRequestsUC:  listRequestsUC,
		deleteRequestUC: deleteRequestUC,
		logger:          logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	result, err := h.createRequestUC.Execute(c.Request.Context(), req.ToCommand(a))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// ListRequests handles GET /requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	req, err := parseListRequestsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	result, err := h.listRequestsUC.Execute(c.Request.Context(), req.ToQuery(a))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	query := usecases.GetRequestQuery{Actor: a, RequestID: requestID}

	result, err := h.getRequestUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRequestWithResponses handles GET /requests/:id/responses
func (h *RequestHandler) GetRequestWithResponses(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	query := usecases.GetRequestWithResponsesQuery{Actor: a, RequestID: requestID}

	result, err := h.getWithRespUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRequest handles PATCH /requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	result, err := h.updateRequestUC.Execute(c.Request.Context(), req.ToCommand(a, requestID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// ChangeStatus handles PATCH /requests/:id/status
func (h *RequestHandler) ChangeStatus(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.ChangeStatusCommand{
		Actor:     a,
		RequestID: requestID,
		NewStatus: req.Status,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated successfully", result)
}

// Reply handles POST /requests/:id/responses
func (h *RequestHandler) Reply(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reply", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.ReplyCommand{
		Actor:     a,
		RequestID: requestID,
		Text:      req.Text,
	}

	result, err := h.replyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		// The response may have been saved even when the status update
		// failed; the error type tells the client to re-fetch.
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}

// DeleteRequest handles DELETE /requests/:id
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.DeleteRequestCommand{Actor: a, RequestID: requestID}

	if _, err := h.deleteRequestUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseRequestID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("id", "invalid request ID")
	}
	return uint(id), nil
}

func mustActor(c *gin.Context) actor.Actor {
	a, _ := middleware.ActorFromContext(c)
	return a
}
