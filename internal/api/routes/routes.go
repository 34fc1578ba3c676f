package routes

import (
	"context"
	"errors"
	"net/http"

	"crescendai-backend/internal/api/handlers"
	"crescendai-backend/internal/api/middleware"
	"crescendai-backend/internal/auth"
	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/config"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/messaging"
	"crescendai-backend/internal/metrics"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/service"
	"crescendai-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the infrastructure clients the routes are built over. Blobs, Publisher,
// Cache and Auth are optional.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Blobs     storage.BlobStore
	Publisher *messaging.Publisher
	Cache     cache.Cache
	Auth      *auth.AuthService
}

// NewAuthService loads the OAuth provider configuration and builds the auth service with a
// provisioner over db. A nil service is returned, with the error, when auth is not configured.
func NewAuthService(db *gorm.DB, configPath string) (*auth.AuthService, error) {
	authConfig, err := auth.LoadAuthConfig(configPath)
	if err != nil {
		return nil, err
	}

	provisioner := auth.NewUserProvisioner(
		repository.NewUserRepository(db),
		repository.NewAccountRepository(db),
		repository.NewOrganizationRepository(db),
	)
	return auth.NewAuthService(authConfig, provisioner)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	db := deps.DB
	cfg := deps.Config

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := service.NewValidator()

	appCache := deps.Cache
	if appCache == nil {
		appCache = cache.Noop{}
	}

	// A nil *Publisher must not end up as a non-nil interface
	var publisher service.RecordingPublisher
	if deps.Publisher != nil {
		publisher = deps.Publisher
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	recordingRepo := repository.NewRecordingRepository(db)
	mailRepo := repository.NewMailRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, memberRepo, userRepo, appCache, cfg.CacheTTL, validator)
	recordingService := service.NewRecordingService(recordingRepo, organizationRepo, memberRepo, deps.Blobs, publisher, appCache, validator,
		service.RecordingSettings{MaxUploadSize: cfg.MaxUploadSize, PublicBaseURL: cfg.PublicBaseURL})
	dashboardService := service.NewDashboardService(organizationRepo, recordingRepo, appCache, cfg.CacheTTL)
	mailService := service.NewMailService(mailRepo, userRepo, validator, cfg.MailboxReadOnly)
	userService := service.NewUserService(userRepo, organizationService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(dependencyChecks(deps))
	organizationHandler := handlers.NewOrganizationHandler(organizationService, recordingService)
	recordingHandler := handlers.NewRecordingHandler(recordingService, cfg.MaxUploadSize)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	mailHandler := handlers.NewMailHandler(mailService)
	userHandler := handlers.NewUserHandler(userService, mailService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var authMiddleware *auth.AuthMiddleware
	if deps.Auth != nil {
		authHandler := auth.NewAuthHandler(deps.Auth)
		authMiddleware = auth.NewAuthMiddleware(deps.Auth)

		authGroup := router.Group("/api/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
				providerGroup.POST("/refresh", authHandler.Refresh)
				providerGroup.POST("/logout", authHandler.Logout)
			}

			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	} else {
		logger.New().Warn("Auth is not configured; /api/v1 answers 401 to every request")
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	} else {
		v1.Use(rejectUnauthenticated)
	}

	{
		v1.GET("/me", userHandler.GetCurrentUser)

		users := v1.Group("/users")
		{
			users.GET("/email-addresses", userHandler.ListEmailAddresses)
			users.GET("/:id/profile", userHandler.GetUserProfile)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/by-slug/:slug", organizationHandler.GetOrganizationBySlug)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/members", organizationHandler.ListMembers)
			organizations.POST("/:id/members", organizationHandler.InviteMember)
			organizations.DELETE("/:id/members/:userId", organizationHandler.RemoveMember)
			organizations.GET("/:id/recordings", organizationHandler.ListRecordings)
		}

		recordings := v1.Group("/recordings")
		{
			recordings.GET("", recordingHandler.ListRecordings)
			recordings.POST("", recordingHandler.CreateRecording)
			recordings.GET("/search", recordingHandler.SearchRecordings)
			recordings.GET("/:id", recordingHandler.GetRecording)
			recordings.GET("/:id/share", recordingHandler.ShareLink)
			recordings.DELETE("/:id", recordingHandler.DeleteRecording)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/overview", dashboardHandler.Overview)
		}

		mail := v1.Group("/mail")
		{
			mail.GET("/folders", mailHandler.ListFolders)
			mail.GET("/folders/:name/threads", mailHandler.ListThreads)
			mail.GET("/folders/:name/threads/:id", mailHandler.GetThread)
			mail.DELETE("/folders/:name/emails/:id", mailHandler.DeleteEmail)
			mail.POST("/emails", mailHandler.SendEmail)
			mail.POST("/threads/:id/done", mailHandler.MoveThreadToDone)
			mail.POST("/threads/:id/trash", mailHandler.MoveThreadToTrash)
			mail.GET("/search", mailHandler.SearchThreads)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}

func dependencyChecks(deps Dependencies) map[string]handlers.DependencyCheck {
	checks := map[string]handlers.DependencyCheck{
		"database": handlers.DatabaseCheck(deps.DB),
	}
	if deps.Cache != nil {
		checks["cache"] = deps.Cache.Ping
	}
	if deps.Publisher != nil {
		publisher := deps.Publisher
		checks["queue"] = func(context.Context) error {
			if !publisher.Healthy() {
				return errors.New("broker connection closed")
			}
			return nil
		}
	}
	return checks
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(map[string]handlers.DependencyCheck{
		"database": handlers.DatabaseCheck(db),
	})
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

// rejectUnauthenticated stands in for the auth middleware when no provider is configured
func rejectUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication is not configured"})
}
