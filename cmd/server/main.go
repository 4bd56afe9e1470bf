package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/api"
	"github.com/azpdscc/website-api/internal/auth"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/azpdscc/website-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting AZPDSCC website API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize the AI client. The server runs without one: generation
	// endpoints report unavailable and conversational flows fall back.
	aiClient, err := ai.NewClient(&cfg.AI)
	if err != nil {
		if !errors.Is(err, ai.ErrNotConfigured) {
			log.Fatal().Err(err).Msg("Failed to initialize AI client")
		}
		log.Warn().Msg("OPENAI_API_KEY not set, AI generation disabled")
	}

	// Initialize the mailer. Also optional: form submissions still
	// succeed, they just skip their notification emails.
	mail, err := mailer.New(&cfg.Email, log)
	if err != nil {
		if !errors.Is(err, mailer.ErrNotConfigured) {
			log.Fatal().Err(err).Msg("Failed to initialize mailer")
		}
		log.Warn().Msg("RESEND_API_KEY not set, email dispatch disabled")
	}

	// Volunteer sessions live in Redis when available, otherwise in memory
	var sessions auth.SessionStore
	if cfg.Redis.Configured() {
		sessions = auth.NewRedisSessionStore(&cfg.Redis)
		log.Info().Str("addr", cfg.Redis.Addr()).Msg("Using Redis session store")
	} else {
		sessions = auth.NewMemorySessionStore()
		log.Info().Msg("Using in-memory session store")
	}

	// Initialize services
	services := service.NewServices(repos, cfg, aiClient, mail, log)

	// Initialize router
	router := api.NewRouter(services, cfg, sessions, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
