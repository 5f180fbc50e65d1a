package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "helpdesk/internal/interfaces/http/handlers/request"
	"helpdesk/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		requests.POST("", config.RequestHandler.CreateRequest)
		requests.GET("", config.RequestHandler.ListRequests)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		requests.PATCH("/:id/status", config.RequestHandler.ChangeStatus)
		requests.POST("/:id/responses", config.RequestHandler.Reply)
		requests.GET("/:id/responses", config.RequestHandler.GetRequestWithResponses)

		// Generic parameterized routes (must come LAST)
		requests.GET("/:id", config.RequestHandler.GetRequest)
		requests.PATCH("/:id", config.RequestHandler.UpdateRequest)
		requests.DELETE("/:id", config.RequestHandler.DeleteRequest)
	}
}
