package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"crescendai-backend/internal/api/handlers"
	"crescendai-backend/internal/api/middleware"
	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/config"
	"crescendai-backend/internal/database"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/messaging"
	"crescendai-backend/internal/metrics"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/service"
	"crescendai-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// The worker consumes recording.process messages, fingerprints the uploaded audio and
// settles each recording as processed or failed.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel, nil)
	log := logger.New().WithField("component", "worker")

	if !cfg.MessagingEnabled() || !cfg.StorageEnabled() {
		log.Fatal("The worker needs RABBIT_URL and S3_BUCKET to be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

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

	checks := map[string]handlers.DependencyCheck{
		"database": handlers.DatabaseCheck(db),
	}

	// state changes invalidate the dashboard entries the API server caches
	var recordingCache cache.Cache
	redisCache, err := openCache(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	if redisCache != nil {
		defer redisCache.Close()
		recordingCache = redisCache
		checks["cache"] = redisCache.Ping
	}

	recordings := service.NewRecordingService(
		repository.NewRecordingRepository(db),
		repository.NewOrganizationRepository(db),
		repository.NewMemberRepository(db),
		store,
		nil,
		recordingCache,
		service.NewValidator(),
		service.RecordingSettings{MaxUploadSize: cfg.MaxUploadSize, PublicBaseURL: cfg.PublicBaseURL},
	)

	consumer, err := messaging.NewConsumer(
		cfg.RabbitURL,
		cfg.RabbitExchange,
		cfg.RabbitQueue,
		messaging.NewProcessor(recordings, store),
		func(outcome messaging.Outcome) {
			metrics.RecordRecordingProcessed(outcome.String())
		},
	)
	if err != nil {
		log.Fatal("Failed to connect to message broker:", err)
	}
	defer consumer.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	healthHandler := handlers.NewHealthHandler(checks)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	srv := &http.Server{
		Addr:              ":" + cfg.WorkerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Infof("Starting worker health server on port %s", cfg.WorkerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return consumer.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.WithError(err).Error("Worker stopped with error")
		return
	}

	log.Info("Worker stopped gracefully")
}

// openCache connects to the Redis instance shared with the API server. It returns nil when
// REDIS_ADDR is unset.
func openCache(ctx context.Context, cfg *config.Config) (*cache.RedisCache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	return cache.NewRedisCache(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
