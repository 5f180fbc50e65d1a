package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/response/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ResponseHandler struct {
	listResponsesUC  usecases.ListResponsesExecutor
	getResponseUC    usecases.GetResponseExecutor
	updateResponseUC usecases.UpdateResponseExecutor
	deleteResponseUC usecases.DeleteResponseExecutor
	logger           logger.Interface
}

func NewResponseHandler(
	listResponsesUC usecases.ListResponsesExecutor,
	getResponseUC usecases.GetResponseExecutor,
	updateResponseUC usecases.UpdateResponseExecutor,
	deleteResponseUC usecases.DeleteResponseExecutor,
) *ResponseHandler {
	return &ResponseHandler{
		listResponsesUC:  listResponsesUC,
		getResponseUC:    getResponseUC,
		updateResponseUC: updateResponseUC,
		deleteResponseUC: deleteResponseUC,
		logger:           logger.NewLogger(),
	}
}

// ListResponses handles GET /responses
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	a := mustActor(c)
	query := usecases.ListResponsesQuery{
		Actor:  a,
		Search: c.Query("search"),
	}

	result, err := h.listResponsesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// GetResponse handles GET /responses/:id
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	responseID, err := parseResponseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	query := usecases.GetResponseQuery{Actor: a, ResponseID: responseID}

	result, err := h.getResponseUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateResponse handles PATCH /responses/:id
func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	responseID, err := parseResponseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update response", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.UpdateResponseCommand{
		Actor:      a,
		ResponseID: responseID,
		Text:       req.Text,
	}

	result, err := h.updateResponseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response updated successfully", result)
}

// DeleteResponse handles DELETE /responses/:id
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	responseID, err := parseResponseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.DeleteResponseCommand{Actor: a, ResponseID: responseID}

	if _, err := h.deleteResponseUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type UpdateResponseRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

func parseResponseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("id", "invalid response ID")
	}
	return uint(id), nil
}

func mustActor(c *gin.Context) actor.Actor {
	a, _ := middleware.ActorFromContext(c)
	return a
}
