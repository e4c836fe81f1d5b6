package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/replenish-inc/replenish/internal/interfaces/http/handlers"
)

// SubscriptionRouteConfig contains dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
}

// SetupSubscriptionRoutes configures subscription lifecycle routes.
// Routes: /subscriptions/*
// :sid is subscription SID (sub_xxx format)
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/subscriptions")
	{
		subscriptions.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("/:sid", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.POST("/:sid/pause", cfg.SubscriptionHandler.PauseSubscription)
		subscriptions.POST("/:sid/resume", cfg.SubscriptionHandler.ResumeSubscription)
		subscriptions.POST("/:sid/cancel", cfg.SubscriptionHandler.CancelSubscription)
	}
}
