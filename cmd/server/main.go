package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crescendai-backend/internal/api/routes"
	"crescendai-backend/internal/auth"
	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/config"
	"crescendai-backend/internal/database"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/messaging"
	"crescendai-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "crescendai-backend/docs" // This is needed for swag
)

const (
	authConfigPath    = "config/auth.yaml"
	tokenPruneEvery   = 15 * time.Minute
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

//	@title			CrescendAI Backend API
//	@version		1.0
//	@description	This is the backend API for CrescendAI, providing endpoints for the mail client, organizations, members and audio recordings.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, nil)
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	deps := routes.Dependencies{DB: db, Config: cfg}

	if cfg.StorageEnabled() {
		store, err := storage.NewS3Store(ctx, storage.S3Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3Bucket,
			UsePathStyle:    cfg.S3UsePathStyle,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatal("Failed to initialize blob storage:", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to ensure storage bucket:", err)
		}
		deps.Blobs = store
	} else {
		log.Warn("S3_BUCKET is not set; audio uploads are disabled")
	}

	if cfg.MessagingEnabled() {
		publisher, err := messaging.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatal("Failed to connect to message broker:", err)
		}
		defer publisher.Close()
		deps.Publisher = publisher
	} else {
		log.Warn("RABBIT_URL is not set; recordings stay queued until a worker is connected")
	}

	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
		defer redisCache.Close()
		deps.Cache = redisCache
	}

	authService, err := routes.NewAuthService(db, authConfigPath)
	if err != nil {
		log.WithError(err).Warn("Auth is not configured")
	} else {
		deps.Auth = authService
		go pruneRefreshTokens(ctx, authService)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(deps)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-serverErr:
		log.Error("Server error:", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown:", err)
		return
	}

	log.Info("Server stopped gracefully")
}

func pruneRefreshTokens(ctx context.Context, authService *auth.AuthService) {
	ticker := time.NewTicker(tokenPruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := authService.PruneExpired(); removed > 0 {
				logger.New().WithField("removed", removed).Debug("Pruned expired refresh tokens")
			}
		}
	}
}
