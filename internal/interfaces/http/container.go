package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	requestUsecases "helpdesk/internal/application/request/usecases"
	responseUsecases "helpdesk/internal/application/response/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	domainRequest "helpdesk/internal/domain/request"
	domainResponse "helpdesk/internal/domain/response"
	domainUser "helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	authHandlers "helpdesk/internal/interfaces/http/handlers/auth"
	requestHandlers "helpdesk/internal/interfaces/http/handlers/request"
	responseHandlers "helpdesk/internal/interfaces/http/handlers/response"
	userHandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/collection"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middleware together
// and owns the Gin engine they are mounted on.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	authMiddleware *middleware.AuthMiddleware

	authHandler     *authHandlers.AuthHandler
	requestHandler  *requestHandlers.RequestHandler
	responseHandler *responseHandlers.ResponseHandler
	userHandler     *userHandlers.UserHandler
}

// noopNotifier satisfies the notifier interfaces when email delivery is
// disabled in configuration.
type noopNotifier struct{}

func (noopNotifier) NotifyReply(ctx context.Context, recipient string, requestNumber uint, responseText string) error {
	return nil
}

func (noopNotifier) NotifyWelcome(recipient, name string) error {
	return nil
}

// NewContainer builds the full dependency graph for the HTTP server.
func NewContainer(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	// Repositories
	requestRepo := repository.NewRequestRepository(database)
	responseRepo := repository.NewResponseRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Shared services
	markdownSvc := markdown.NewService()
	txManager := db.NewTransactionManager(database)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	var replyNotifier requestUsecases.ReplyNotifier
	var welcomeNotifier userUsecases.WelcomeNotifier
	if cfg.Email.Enabled {
		emailSvc := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
		replyNotifier = emailSvc
		welcomeNotifier = emailSvc
	} else {
		replyNotifier = noopNotifier{}
		welcomeNotifier = noopNotifier{}
	}

	// Collection snapshots shared between list and delete use cases
	requestStore := collection.NewStore(func(r *domainRequest.Request) uint { return r.ID() })
	responseStore := collection.NewStore(func(r *domainResponse.Response) uint { return r.ID() })
	userStore := collection.NewStore(func(u *domainUser.User) uint { return u.ID() })

	// Request use cases
	createRequestUC := requestUsecases.NewCreateRequestUseCase(requestRepo, log)
	updateRequestUC := requestUsecases.NewUpdateRequestUseCase(requestRepo, log)
	changeStatusUC := requestUsecases.NewChangeStatusUseCase(requestRepo, log)
	replyUC := requestUsecases.NewReplyUseCase(requestRepo, responseRepo, userRepo, markdownSvc, replyNotifier, log)
	getRequestUC := requestUsecases.NewGetRequestUseCase(requestRepo, log)
	getWithRespUC := requestUsecases.NewGetRequestWithResponsesUseCase(requestRepo, responseRepo, markdownSvc, log)
	listRequestsUC := requestUsecases.NewListRequestsUseCase(requestRepo, requestStore, log)
	deleteRequestUC := requestUsecases.NewDeleteRequestUseCase(requestRepo, responseRepo, txManager, requestStore, log)

	// Response use cases
	listResponsesUC := responseUsecases.NewListResponsesUseCase(responseRepo, requestRepo, userRepo, responseStore, log)
	getResponseUC := responseUsecases.NewGetResponseUseCase(responseRepo, requestRepo, markdownSvc, log)
	updateResponseUC := responseUsecases.NewUpdateResponseUseCase(responseRepo, markdownSvc, log)
	deleteResponseUC := responseUsecases.NewDeleteResponseUseCase(responseRepo, log)

	// User use cases
	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, jwtService, welcomeNotifier, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getCurrentUserUC := userUsecases.NewGetCurrentUserUseCase(userRepo, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, userStore, log)
	getUserUC := userUsecases.NewGetUserUseCase(userRepo, log)
	updateUserUC := userUsecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userUsecases.NewDeleteUserUseCase(userRepo, userStore, log)

	return &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		redis:  redisClient,

		authMiddleware: middleware.NewAuthMiddleware(jwtService, userRepo, log),

		authHandler: authHandlers.NewAuthHandler(registerUC, loginUC, getCurrentUserUC),
		requestHandler: requestHandlers.NewRequestHandler(
			createRequestUC,
			updateRequestUC,
			changeStatusUC,
			replyUC,
			getRequestUC,
			getWithRespUC,
			listRequestsUC,
			deleteRequestUC,
		),
		responseHandler: responseHandlers.NewResponseHandler(
			listResponsesUC,
			getResponseUC,
			updateResponseUC,
			deleteResponseUC,
		),
		userHandler: userHandlers.NewUserHandler(
			listUsersUC,
			getUserUC,
			updateUserUC,
			deleteUserUC,
		),
	}
}

// Engine returns the configured Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// rateLimitMiddleware returns the rate limiting middleware when enabled,
// or nil when rate limiting is off or Redis is not configured.
func (c *Container) rateLimitMiddleware() gin.HandlerFunc {
	if !c.cfg.RateLimit.Enabled || c.redis == nil {
		return nil
	}

	limiter := ratelimit.NewRedisLimiter(c.redis)
	rlCfg := ratelimit.Config{
		RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   c.cfg.RateLimit.RequestsPerHour,
	}
	return middleware.RateLimit(limiter, rlCfg, c.log)
}
