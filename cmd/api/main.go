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

	"github.com/devportfolio/portfolio-api/config"
	"github.com/devportfolio/portfolio-api/internal/cache"
	"github.com/devportfolio/portfolio-api/internal/handlers"
	"github.com/devportfolio/portfolio-api/internal/middleware"
	"github.com/devportfolio/portfolio-api/internal/repository"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/devportfolio/portfolio-api/pkg/db"
	"github.com/devportfolio/portfolio-api/pkg/httpclient"
	"github.com/devportfolio/portfolio-api/pkg/jwt"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/password"
	"github.com/devportfolio/portfolio-api/pkg/profiling"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"github.com/devportfolio/portfolio-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	jsonBodyLimit   = 1 * 1024 * 1024
	uploadBodyLimit = 12 * 1024 * 1024
)

type apiHandlers struct {
	public     *handlers.PublicHandler
	contact    *handlers.ContactHandler
	health     *handlers.HealthHandler
	logs       *handlers.LogsHandler
	auth       *handlers.AuthHandler
	stats      *handlers.StatsHandler
	projects   *handlers.ProjectHandler
	skills     *handlers.SkillHandler
	journey    *handlers.JourneyHandler
	highlights *handlers.HighlightHandler
	resumes    *handlers.ResumeHandler
	messages   *handlers.MessageHandler
	uploads    *handlers.UploadHandler
}

// registerPublicRoutes registers the visitor facing API
func registerPublicRoutes(
	api *gin.RouterGroup,
	generalRateLimiter, contactRateLimiter *middleware.RateLimiter,
	h *apiHandlers,
) {
	public := api.Group("", generalRateLimiter.Middleware())
	public.GET("/projects", h.public.Projects)
	public.GET("/projects/:id", h.public.Project)
	public.GET("/skills", h.public.Skills)
	public.GET("/journey", h.public.Journey)
	public.GET("/highlights", h.public.Highlights)
	public.GET("/resume/active", h.public.ActiveResume)
	public.GET("/resume/public", h.public.PublicResumes)
	public.GET("/resume/download/:id", h.resumes.Download)
	public.POST("/logs", middleware.BodySizeLimitMiddleware(jsonBodyLimit), h.logs.ReceiveFrontendLogs)

	api.POST("/contact", contactRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), h.contact.Submit)
}

// registerAdminRoutes registers login and every bearer protected route
func registerAdminRoutes(
	api *gin.RouterGroup,
	loginRateLimiter, adminRateLimiter *middleware.RateLimiter,
	authService *services.AuthService,
	h *apiHandlers,
) {
	api.POST("/admin/login", loginRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), h.auth.Login)

	requireAdmin := middleware.AdminAuthMiddleware(authService, services.ErrTokenRevoked)

	admin := api.Group("/admin", adminRateLimiter.Middleware(), requireAdmin, middleware.BodySizeLimitMiddleware(jsonBodyLimit))
	admin.POST("/logout", h.auth.Logout)
	admin.GET("/verify", h.auth.Verify)
	admin.GET("/profile", h.auth.Profile)
	admin.GET("/statistics", h.stats.Statistics)

	admin.GET("/projects", h.projects.List)
	admin.POST("/projects", h.projects.Create)
	admin.GET("/projects/stats", h.projects.Stats)
	admin.GET("/projects/:id", h.projects.Get)
	admin.PUT("/projects/:id", h.projects.Update)
	admin.DELETE("/projects/:id", h.projects.Delete)
	admin.PATCH("/projects/:id/toggle-featured", h.projects.ToggleFeatured)

	admin.GET("/skills", h.skills.List)
	admin.GET("/skills/icons", h.skills.Icons)
	admin.POST("/skills", h.skills.Create)
	admin.PUT("/skills/:id", h.skills.Update)
	admin.DELETE("/skills/:id", h.skills.Delete)
	admin.PATCH("/skills/:id/toggle-active", h.skills.ToggleActive)

	admin.GET("/journey", h.journey.List)
	admin.POST("/journey", h.journey.Create)
	admin.PUT("/journey/:id", h.journey.Update)
	admin.DELETE("/journey/:id", h.journey.Delete)

	admin.GET("/highlights", h.highlights.List)
	admin.POST("/highlights", h.highlights.Create)
	admin.PUT("/highlights/:id", h.highlights.Update)
	admin.DELETE("/highlights/:id", h.highlights.Delete)
	admin.PATCH("/highlights/:id/toggle-active", h.highlights.ToggleActive)
	admin.PATCH("/highlights/:id/toggle-featured", h.highlights.ToggleFeatured)

	admin.GET("/messages", h.messages.List)
	admin.PATCH("/messages/:id/read", h.messages.MarkRead)
	admin.PATCH("/messages/:id/toggle-read", h.messages.ToggleRead)
	admin.DELETE("/messages/:id", h.messages.Delete)

	admin.GET("/resume", h.resumes.List)
	admin.GET("/resume/:id", h.resumes.Get)
	admin.PUT("/resume/:id", h.resumes.Update)
	admin.DELETE("/resume/:id", h.resumes.Delete)
	admin.PATCH("/resume/:id/toggle-active", h.resumes.ToggleActive)
	admin.PATCH("/resume/:id/toggle-public", h.resumes.TogglePublic)

	// Multipart routes get the larger body limit
	uploads := api.Group("", adminRateLimiter.Middleware(), requireAdmin, middleware.BodySizeLimitMiddleware(uploadBodyLimit))
	uploads.POST("/admin/resume", h.resumes.Upload)
	uploads.POST("/upload/images", h.uploads.UploadImage)
	uploads.DELETE("/upload/images", h.uploads.DeleteImage)
}

func newRevocationStore(ctx context.Context, cfg *config.Config) (cache.RevocationStore, func()) {
	if cfg.Redis.URL == "" {
		logger.Info("Token revocation kept in memory")
		return cache.NewMemoryRevocationStore(), func() {}
	}

	store, err := cache.NewRedisRevocationStore(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close Redis client", zap.Error(err))
		}
	}
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

	logger.Info("Starting Portfolio API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Background workers stop with this context
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
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

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, profiling.Target{
		Service:     cfg.Observability.ServiceName,
		Namespace:   cfg.Observability.ServiceNamespace,
		Version:     cfg.Observability.ServiceVersion,
		Instance:    cfg.Observability.ServiceInstanceID,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(appCtx, db.PoolConfig{
		URL:        cfg.Database.URL,
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		CACertPath: cfg.Database.CACertPath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: migrations run separately via cmd/migrate

	// Object storage is optional; uploads and downloads answer 503 without it
	var objects services.ObjectStorage
	if cfg.Storage.Enabled() {
		storageClient, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(err))
		}
		objects = storageClient
	} else {
		logger.Warn("Object storage not configured: resume and image uploads disabled")
	}

	revocations, closeRevocations := newRevocationStore(appCtx, cfg)
	defer closeRevocations()

	// Repositories
	projectRepo := repository.NewProjectRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	journeyRepo := repository.NewJourneyRepository(pool)
	highlightRepo := repository.NewHighlightRepository(pool)
	resumeRepo := repository.NewResumeRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	publicCache := cache.NewPublicCache(cfg.Cache.PublicTTLSeconds)

	// Services
	tokenManager := jwt.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTLHours)
	authService := services.NewAuthService(adminRepo, tokenManager, password.NewService(), revocations)
	publicService := services.NewPublicService(projectRepo, skillRepo, journeyRepo, highlightRepo, resumeRepo, publicCache)
	resumeService := services.NewResumeService(resumeRepo, objects, publicCache)

	if cfg.Auth.AdminUsername != "" {
		if err := authService.EnsureAdmin(appCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.AdminEmail, cfg.Auth.AdminName); err != nil {
			logger.Fatal("Failed to provision admin account", zap.Error(err))
		}
	}

	// Initialize public cache synchronously before accepting requests
	if err := publicCache.Initialize(appCtx, publicService.Warm); err != nil {
		logger.Fatal("Failed to initialize public cache", zap.Error(err))
	}

	h := &apiHandlers{
		public:     handlers.NewPublicHandler(publicService),
		contact:    handlers.NewContactHandler(services.NewContactService(messageRepo, cfg.Contact.NotifyURL, httpclient.NewStandardClient())),
		health:     handlers.NewHealthHandler(pool, publicCache.IsReady),
		logs:       handlers.NewLogsHandler(cfg.Logging.Dir),
		auth:       handlers.NewAuthHandler(authService),
		stats:      handlers.NewStatsHandler(services.NewStatsService(statsRepo)),
		projects:   handlers.NewProjectHandler(services.NewProjectService(projectRepo, publicCache)),
		skills:     handlers.NewSkillHandler(services.NewSkillService(skillRepo, publicCache)),
		journey:    handlers.NewJourneyHandler(services.NewJourneyService(journeyRepo, publicCache)),
		highlights: handlers.NewHighlightHandler(services.NewHighlightService(highlightRepo, publicCache)),
		resumes:    handlers.NewResumeHandler(resumeService),
		messages:   handlers.NewMessageHandler(services.NewMessageService(messageRepo)),
		uploads:    handlers.NewUploadHandler(services.NewUploadService(objects)),
	}
	defer func() {
		if err := h.logs.Close(); err != nil {
			logger.Error("Failed to close frontend log file", zap.Error(err))
		}
	}()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	handlers.RegisterValidators()
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware("/api/projects", "/api/skills", "/api/journey", "/api/highlights"))

	// CORS configuration - only configured origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(appCtx, "public", 100, 200)
	adminRateLimiter := middleware.NewRateLimiter(appCtx, "admin", 20, 40)
	contactRateLimiter := middleware.NewRateLimiter(appCtx, "contact", middleware.PerMinute(1), 5)
	contactRateLimiter.WithMessage("Too many messages. Please try again later.")
	loginRateLimiter := middleware.NewRateLimiter(appCtx, "login", middleware.PerMinute(2), 5)
	loginRateLimiter.WithMessage("Too many login attempts. Please try again later.")

	// API routes
	api := router.Group("/api")
	api.GET("/health", h.health.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	registerPublicRoutes(api, generalRateLimiter, contactRateLimiter, h)
	registerAdminRoutes(api, loginRateLimiter, adminRateLimiter, authService, h)

	router.NoRoute(handlers.NoRoute)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB max header size
	}

	// Start server in a goroutine
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
