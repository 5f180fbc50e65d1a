package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

// Setup mounts middleware and all route groups on the engine.
func (c *Container) Setup() {
	switch c.cfg.Server.Mode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	if rl := c.rateLimitMiddleware(); rl != nil {
		c.engine.Use(rl)
	}

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupRequestRoutes(c.engine, &routes.RequestRouteConfig{
		RequestHandler: c.requestHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupResponseRoutes(c.engine, &routes.ResponseRouteConfig{
		ResponseHandler: c.responseHandler,
		AuthMiddleware:  c.authMiddleware,
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.userHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
