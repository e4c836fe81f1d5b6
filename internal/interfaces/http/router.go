// Package http wires the HTTP surface of the reminder service.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reminderUsecases "github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	subscriptionUsecases "github.com/replenish-inc/replenish/internal/application/subscription/usecases"
	"github.com/replenish-inc/replenish/internal/infrastructure/config"
	"github.com/replenish-inc/replenish/internal/infrastructure/directory"
	"github.com/replenish-inc/replenish/internal/infrastructure/ratelimit"
	"github.com/replenish-inc/replenish/internal/infrastructure/repository"
	"github.com/replenish-inc/replenish/internal/interfaces/http/handlers"
	"github.com/replenish-inc/replenish/internal/interfaces/http/middleware"
	"github.com/replenish-inc/replenish/internal/interfaces/http/routes"
	"github.com/replenish-inc/replenish/internal/shared/db"
	"github.com/replenish-inc/replenish/internal/shared/logger"
	"github.com/replenish-inc/replenish/internal/shared/utils"
)

// RouterDeps carries the externally constructed dependencies of the router.
type RouterDeps struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      logger.Interface
}

// Router owns the gin engine and the wiring behind it.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface: repositories, use cases, handlers,
// middleware and routes.
func NewRouter(deps RouterDeps) *Router {
	gin.SetMode(deps.Config.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(deps.Logger.Named("http")))

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	subscriptionRepo := repository.NewSubscriptionRepository(deps.DB, deps.Logger.Named("subscription_repo"))
	confirmationRepo := repository.NewConfirmationRepository(deps.DB, deps.Logger.Named("confirmation_repo"))
	txManager := db.NewTransactionManager(deps.DB)
	dir := directory.NewGormDirectory(deps.DB, deps.Logger.Named("directory"))

	getConfirmationUC := reminderUsecases.NewGetConfirmationUseCase(
		confirmationRepo,
		subscriptionRepo,
		dir,
		deps.Logger.Named("get_confirmation"),
	)
	processConfirmationUC := reminderUsecases.NewProcessConfirmationUseCase(
		confirmationRepo,
		subscriptionRepo,
		txManager,
		deps.Logger.Named("process_confirmation"),
	)
	getStatisticsUC := reminderUsecases.NewGetStatisticsUseCase(
		subscriptionRepo,
		confirmationRepo,
		deps.Logger.Named("get_statistics"),
	)

	createSubscriptionUC := subscriptionUsecases.NewCreateSubscriptionUseCase(subscriptionRepo, deps.Logger.Named("create_subscription"))
	getSubscriptionUC := subscriptionUsecases.NewGetSubscriptionUseCase(subscriptionRepo, deps.Logger.Named("get_subscription"))
	pauseSubscriptionUC := subscriptionUsecases.NewPauseSubscriptionUseCase(subscriptionRepo, deps.Logger.Named("pause_subscription"))
	resumeSubscriptionUC := subscriptionUsecases.NewResumeSubscriptionUseCase(subscriptionRepo, deps.Logger.Named("resume_subscription"))
	cancelSubscriptionUC := subscriptionUsecases.NewCancelSubscriptionUseCase(subscriptionRepo, deps.Logger.Named("cancel_subscription"))

	confirmationHandler := handlers.NewConfirmationHandler(getConfirmationUC, processConfirmationUC, getStatisticsUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(
		createSubscriptionUC,
		getSubscriptionUC,
		pauseSubscriptionUC,
		resumeSubscriptionUC,
		cancelSubscriptionUC,
	)

	limiter := ratelimit.NewRedisRateLimiter(deps.RedisClient)
	rateLimitMiddleware := middleware.NewConfirmationRateLimitMiddleware(
		limiter,
		deps.Config.RateLimit,
		deps.Logger.Named("ratelimit"),
	)

	routes.SetupConfirmationRoutes(engine, &routes.ConfirmationRouteConfig{
		ConfirmationHandler: confirmationHandler,
		RateLimitMiddleware: rateLimitMiddleware,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
