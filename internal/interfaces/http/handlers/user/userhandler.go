package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC  usecases.ListUsersExecutor
	getUserUC    usecases.GetUserExecutor
	updateUserUC usecases.UpdateUserExecutor
	deleteUserUC usecases.DeleteUserExecutor
	logger       logger.Interface
}

func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	getUserUC usecases.GetUserExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		getUserUC:    getUserUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		logger:       logger.NewLogger(),
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	a := mustActor(c)
	query := usecases.ListUsersQuery{
		Actor:  a,
		Search: c.Query("search"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	query := usecases.GetUserQuery{Actor: a, UserID: userID}

	result, err := h.getUserUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(a, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := mustActor(c)
	cmd := usecases.DeleteUserCommand{Actor: a, UserID: userID}

	if _, err := h.deleteUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Surname  *string `json:"surname" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=client support admin"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

func (r *UpdateUserRequest) ToCommand(a actor.Actor, userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		Actor:    a,
		UserID:   userID,
		Name:     r.Name,
		Surname:  r.Surname,
		Email:    r.Email,
		Role:     r.Role,
		Password: r.Password,
	}
}

func parseUserID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("id", "invalid user ID")
	}
	return uint(id), nil
}

func mustActor(c *gin.Context) actor.Actor {
	a, _ := middleware.ActorFromContext(c)
	return a
}
