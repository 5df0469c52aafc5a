// Package routes defines the HTTP routes for the honeypot service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamtrap/honeypot-service/internal/api/handlers"
	"github.com/scamtrap/honeypot-service/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler   *handlers.HealthHandler
	HoneypotHandler *handlers.HoneypotHandler
	SessionsHandler *handlers.SessionsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group("/api/v1/honeypot")
	{
		// Health check routes (no auth required)
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		// Apply auth middleware to protected API routes
		protected := v1.Group("")
		protected.Use(cfg.AuthMiddleware.Authenticate())

		// Turn processing
		protected.POST("/turn", cfg.HoneypotHandler.HandleTurn)

		// Analyst read routes
		sessions := protected.Group("/sessions/:sessionId")
		{
			sessions.GET("", cfg.SessionsHandler.GetSession)
			sessions.GET("/events", cfg.SessionsHandler.ListEvents)
		}
	}

	r.NoRoute(middleware.NotFound())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())

	Setup(r, cfg)
}
