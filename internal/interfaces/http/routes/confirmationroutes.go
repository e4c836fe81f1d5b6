// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/replenish-inc/replenish/internal/interfaces/http/handlers"
	"github.com/replenish-inc/replenish/internal/interfaces/http/middleware"
)

// ConfirmationRouteConfig contains dependencies for the public confirmation routes.
type ConfirmationRouteConfig struct {
	ConfirmationHandler *handlers.ConfirmationHandler
	RateLimitMiddleware *middleware.ConfirmationRateLimitMiddleware
}

// SetupConfirmationRoutes configures the token-addressed confirmation surface.
// Routes: /confirmations/*
// :token is the opaque bearer token from the reminder email.
func SetupConfirmationRoutes(engine *gin.Engine, cfg *ConfirmationRouteConfig) {
	confirmations := engine.Group("/confirmations")
	confirmations.Use(cfg.RateLimitMiddleware.LimitByClientIP())
	{
		confirmations.GET("/:token", cfg.ConfirmationHandler.GetConfirmation)
		confirmations.POST("/respond", cfg.ConfirmationHandler.Respond)
	}

	engine.GET("/statistics", cfg.ConfirmationHandler.GetStatistics)
}
