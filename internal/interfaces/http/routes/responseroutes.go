package routes

import (
	"github.com/gin-gonic/gin"

	responsehandlers "helpdesk/internal/interfaces/http/handlers/response"
	"helpdesk/internal/interfaces/http/middleware"
)

type ResponseRouteConfig struct {
	ResponseHandler *responsehandlers.ResponseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupResponseRoutes(engine *gin.Engine, config *ResponseRouteConfig) {
	responses := engine.Group("/responses")
	responses.Use(config.AuthMiddleware.RequireAuth())
	{
		responses.GET("", config.ResponseHandler.ListResponses)
		responses.GET("/:id", config.ResponseHandler.GetResponse)
		responses.PATCH("/:id", config.ResponseHandler.UpdateResponse)
		responses.DELETE("/:id", config.ResponseHandler.DeleteResponse)
	}
}
