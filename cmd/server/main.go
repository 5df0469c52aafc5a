// Package main is the entry point for the Scam Honeypot Service.
// @title Scam Honeypot Service API
// @version 1.0
// @description Conversational honeypot that engages suspected scammers and extracts actionable intelligence

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared-secret API key
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/scamtrap/honeypot-service/docs"
	"github.com/scamtrap/honeypot-service/internal/api/handlers"
	"github.com/scamtrap/honeypot-service/internal/api/middleware"
	"github.com/scamtrap/honeypot-service/internal/api/routes"
	"github.com/scamtrap/honeypot-service/internal/config"
	"github.com/scamtrap/honeypot-service/internal/core/cache"
	rediscache "github.com/scamtrap/honeypot-service/internal/infrastructure/cache/redis"
	"github.com/scamtrap/honeypot-service/internal/infrastructure/docdb/mongodb"
	"github.com/scamtrap/honeypot-service/internal/services/detect"
	"github.com/scamtrap/honeypot-service/internal/services/engine"
	"github.com/scamtrap/honeypot-service/internal/services/llm"
	"github.com/scamtrap/honeypot-service/internal/services/persona"
	"github.com/scamtrap/honeypot-service/internal/services/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.Log)

	ctx := context.Background()

	cacheClient, err := createCacheClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	defer cacheClient.Close()

	docDBClient, err := mongodb.NewClient(ctx, &mongodb.ClientConfig{
		URI:          cfg.Mongo.URI,
		DatabaseName: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document db client")
	}
	defer docDBClient.Close(ctx)

	if err := docDBClient.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	llmClient, err := llm.NewOpenRouterClient(&llm.OpenRouterConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize llm client")
	}
	defer llmClient.Close()

	sessionStore, err := store.New(&store.Config{
		DocDBClient: docDBClient,
		CacheClient: cacheClient,
		TTL:         cfg.Redis.TTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}

	gate, err := detect.NewGate(&detect.GateConfig{
		Client: llmClient,
		Model:  cfg.LLM.Model,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize classifier gate")
	}

	generator, err := persona.NewGenerator(&persona.GeneratorConfig{
		Client: llmClient,
		Model:  cfg.LLM.Model,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reply generator")
	}

	eng, err := engine.New(&engine.Config{
		Store:            sessionStore,
		Gate:             gate,
		Generator:        generator,
		MaxMessages:      cfg.Honeypot.MaxMessages,
		DefaultReply:     cfg.Honeypot.DefaultReply,
		StopReplyEnabled: cfg.Honeypot.StopReplyEnabled,
		StopReply:        cfg.Honeypot.StopReply,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize engine")
	}

	gin.SetMode(cfg.Server.GinMode)
	router := setupRouter(cfg, cacheClient, docDBClient, eng, sessionStore)

	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// setupLogger configures the global zerolog logger.
func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// createCacheClient creates the Redis cache client.
func createCacheClient(cfg config.RedisConfig) (cache.Client, error) {
	return rediscache.NewCache(rediscache.Config{
		Host:       cfg.Host,
		Port:       cfg.Port,
		Password:   cfg.Password,
		DB:         cfg.DB,
		DefaultTTL: cfg.TTL,
	})
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, cacheClient cache.Client, docDBClient *mongodb.Client, eng *engine.Engine, sessionStore *store.Store) *gin.Engine {
	router := gin.New()

	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()
	authMw := middleware.NewAuthMiddleware(cfg.Honeypot.APIKey)

	healthHandler := handlers.NewHealthHandler(cacheClient, docDBClient)
	honeypotHandler := handlers.NewHoneypotHandler(eng)
	sessionsHandler := handlers.NewSessionsHandler(sessionStore)

	routesCfg := &routes.Config{
		HealthHandler:   healthHandler,
		HoneypotHandler: honeypotHandler,
		SessionsHandler: sessionsHandler,
		AuthMiddleware:  authMw,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
