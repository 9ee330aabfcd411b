package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/cache"
	"github.com/estateline/estateline-api/internal/database/postgres"
	"github.com/estateline/estateline-api/internal/handlers"
	"github.com/estateline/estateline-api/internal/middleware"
	"github.com/estateline/estateline-api/internal/repository"
	"github.com/estateline/estateline-api/internal/schedule"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/estateline/estateline-api/pkg/db"
	"github.com/estateline/estateline-api/pkg/httpclient"
	"github.com/estateline/estateline-api/pkg/jwt"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/profiling"
	"github.com/estateline/estateline-api/pkg/storage"
	"github.com/estateline/estateline-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerPublicRoutes registers the public site API
func registerPublicRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, inquiryRateLimiter *middleware.RateLimiter,
	propertyHandler *handlers.PropertyHandler,
	inquiryHandler *handlers.InquiryHandler,
	scheduleHandler *handlers.ScheduleHandler,
	catalogHandler *handlers.CatalogHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	group.GET("/properties", generalRateLimiter.Middleware(), propertyHandler.ListProperties)
	group.GET("/properties/:slug", generalRateLimiter.Middleware(), propertyHandler.GetPropertyBySlug)
	group.GET("/tour-slots", generalRateLimiter.Middleware(), scheduleHandler.GetTourSlots)
	group.POST("/inquiries", inquiryRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), inquiryHandler.CreateInquiry)
	group.GET("/developers", generalRateLimiter.Middleware(), catalogHandler.ListDevelopers)
	group.GET("/categories", generalRateLimiter.Middleware(), catalogHandler.ListCategories)
	group.GET("/testimonials", generalRateLimiter.Middleware(), catalogHandler.ListTestimonials)
	group.GET("/settings", generalRateLimiter.Middleware(), settingsHandler.GetPublicSettings)
}

// registerAdminRoutes registers admin authentication and back-office routes
func registerAdminRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authRateLimiter, adminRateLimiter *middleware.RateLimiter,
	adminAuthHandler *handlers.AdminAuthHandler,
	propertyHandler *handlers.PropertyHandler,
	inquiryHandler *handlers.InquiryHandler,
	catalogHandler *handlers.CatalogHandler,
	settingsHandler *handlers.SettingsHandler,
	notificationHandler *handlers.NotificationHandler,
	tokenManager *jwt.TokenManager,
) {
	// Skip admin routes entirely if JWT is not configured
	if tokenManager == nil {
		logger.Warn("Admin routes disabled: JWT_SECRET not configured")
		return
	}

	auth := router.Group("/api/v1/admin/auth")
	auth.POST("/login", authRateLimiter.Middleware(), adminAuthHandler.Login)
	auth.POST("/logout", adminAuthHandler.Logout)
	auth.GET("/me", middleware.AdminSessionMiddleware(tokenManager, cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure), adminAuthHandler.Me)

	admin := router.Group("/api/v1/admin")
	admin.Use(adminRateLimiter.Middleware())
	admin.Use(middleware.AdminSessionMiddleware(tokenManager, cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure))

	admin.GET("/properties", propertyHandler.ListAllProperties)
	admin.GET("/properties/:id", propertyHandler.GetProperty)
	admin.POST("/properties", propertyHandler.CreateProperty)
	admin.PUT("/properties/:id", propertyHandler.UpdateProperty)
	admin.DELETE("/properties/:id", propertyHandler.DeleteProperty)
	admin.POST("/properties/:id/image", middleware.BodySizeLimitMiddleware(12*1024*1024), propertyHandler.UploadPropertyImage)

	admin.GET("/inquiries", inquiryHandler.ListInquiries)
	admin.GET("/inquiries/:id", inquiryHandler.GetInquiry)
	admin.PATCH("/inquiries/:id/status", inquiryHandler.UpdateInquiryStatus)

	admin.POST("/developers", catalogHandler.CreateDeveloper)
	admin.PUT("/developers/:id", catalogHandler.UpdateDeveloper)
	admin.DELETE("/developers/:id", catalogHandler.DeleteDeveloper)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	admin.GET("/testimonials", catalogHandler.ListAllTestimonials)
	admin.POST("/testimonials", catalogHandler.CreateTestimonial)
	admin.PUT("/testimonials/:id", catalogHandler.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", catalogHandler.DeleteTestimonial)

	admin.GET("/settings/:group", settingsHandler.GetSettingsGroup)
	admin.PUT("/settings/:group", settingsHandler.UpdateSettingsGroup)

	admin.GET("/notifications", notificationHandler.ListNotifications)
	admin.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)
	admin.POST("/notifications/read-all", notificationHandler.MarkAllNotificationsRead)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Estateline API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.CollectorEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (optional)
	if cfg.Profiling.Enabled {
		stopProfiler, profErr := profiling.InitProfiler(
			profiling.Config{
				Enabled:               cfg.Profiling.Enabled,
				Endpoint:              cfg.Profiling.Endpoint,
				AppName:               cfg.Profiling.AppName,
				SampleTypes:           cfg.Profiling.SampleTypes,
				UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
			},
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if profErr != nil {
			logger.Error("Failed to initialize profiler", zap.Error(profErr))
		} else {
			defer stopProfiler()
		}
	}

	// Initialize metrics with service name from config
	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations run separately via the migrate command

	dbClient := postgres.NewClient(pool)

	// Initialize object storage client (image uploads disabled without it)
	var storageClient *storage.Client
	if cfg.ObjectStorage.AccessKeyID != "" && cfg.ObjectStorage.SecretAccessKey != "" {
		storageClient, err = storage.NewClient(
			cfg.ObjectStorage.AccessKeyID,
			cfg.ObjectStorage.SecretAccessKey,
			cfg.ObjectStorage.BucketName,
			cfg.ObjectStorage.Endpoint,
			cfg.ObjectStorage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(err))
		}
	}

	// Property cache reads through the postgres client
	propertyCache := cache.NewPropertyCache(dbClient, cfg.Cache.PropertyTTLSeconds)

	// Populate synchronously before accepting requests so the container is
	// only marked healthy with warm data
	if cfg.Cache.DisablePropertiesCache {
		logger.Warn("Property cache is DISABLED - reading from database on every request (experimental feature)")
	} else {
		if err := propertyCache.Initialize(); err != nil {
			logger.Fatal("Failed to initialize property cache", zap.Error(err))
		}
	}

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(dbClient, propertyCache, cfg.Cache.DisablePropertiesCache)
	inquiryRepo := repository.NewInquiryRepository(dbClient)
	catalogRepo := repository.NewCatalogRepository(dbClient)
	settingsRepo := repository.NewSettingsRepository(dbClient)
	notificationRepo := repository.NewNotificationRepository(dbClient)
	adminRepo := repository.NewAdminRepository(dbClient)

	// Initialize HTTP client for webhook triggers
	httpClient := httpclient.NewStandardClient()

	// Initialize services
	inquiryService := services.NewInquiryService(inquiryRepo, propertyRepo, notificationRepo, cfg, httpClient)
	propertyService := services.NewPropertyService(propertyRepo, notificationRepo, storageClient, cfg, httpClient)
	catalogService := services.NewCatalogService(catalogRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	adminAuthService := services.NewAdminAuthService(adminRepo, cfg)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	scheduleHandler := handlers.NewScheduleHandler(schedule.SystemClock{})
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService)

	cacheReadyFunc := propertyCache.IsReady
	if cfg.Cache.DisablePropertiesCache {
		cacheReadyFunc = func() bool { return true }
	}
	healthHandler := handlers.NewHealthHandler(cacheReadyFunc)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the configured origins, plus localhost in development
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for admin session cookies
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters: tighter limits on submission and login endpoints
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	inquiryRateLimiter := middleware.NewRateLimiter(5, 10)    // 5 req/sec, burst of 10 (prevent spam)
	adminRateLimiter := middleware.NewRateLimiter(20, 40)     // 20 req/sec, burst of 40
	authRateLimiter := middleware.NewRateLimiter(0.0333, 5)   // 2 req/min, burst of 5 (login abuse prevention)

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerPublicRoutes(v1, generalRateLimiter, inquiryRateLimiter,
		propertyHandler, inquiryHandler, scheduleHandler, catalogHandler, settingsHandler)

	registerAdminRoutes(router, cfg, authRateLimiter, adminRateLimiter,
		adminAuthHandler, propertyHandler, inquiryHandler, catalogHandler,
		settingsHandler, notificationHandler, adminAuthService.GetTokenManager())

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
