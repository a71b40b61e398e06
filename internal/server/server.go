// Package server contains the HTTP handlers for the catalog API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "toolverse/docs" // swagger docs
	"toolverse/internal/auth"
	"toolverse/internal/bootstrap"
	"toolverse/internal/cache"
	"toolverse/internal/config"
	"toolverse/internal/database"
	"toolverse/internal/featureflags"
	"toolverse/internal/middleware"
	"toolverse/internal/models"
	"toolverse/internal/notifications"
	"toolverse/internal/observability"
	"toolverse/internal/repository"
	"toolverse/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "toolverse-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	store           *repository.Store
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	shutdownCtx     context.Context
	shutdownFn      context.CancelFunc
	cache           *cache.Cache
	notifier        *notifications.Notifier
	featureFlags    *featureflags.Manager
	identity        auth.IdentityProvider
	toolService     *service.ToolService
	blogService     *service.BlogService
	userToolService *service.UserToolService
	userService     *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	rt, err := bootstrap.InitRuntime(context.Background(), cfg, bootstrap.Options{
		SeedBuiltIns: cfg.SeedData,
		DemoTools:    -1,
	})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, rt.Store, rt.DB, rt.Redis)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// db is nil for the memory store and redisClient is nil when caching is off.
func NewServerWithDeps(cfg *config.Config, store *repository.Store, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if store == nil {
		return nil, errors.New("server requires a store")
	}

	metrics := observability.NewStoreMetrics(store.Backend)
	c := cache.New(redisClient)
	notifier := notifications.NewNotifier(redisClient)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		store:          store,
		promMiddleware: middleware.InitMetrics(serviceName),
		cache:          c,
		notifier:       notifier,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		identity:       auth.NewFixedIdentity(cfg.PlaceholderUserID),
	}
	server.toolService = service.NewToolService(store.Tools, c, notifier, metrics)
	server.blogService = service.NewBlogService(store.BlogPosts, c, notifier, metrics)
	server.userToolService = service.NewUserToolService(store.UserTools, store.Tools, c, metrics)
	server.userService = service.NewUserService(store.Users, metrics)

	return server, nil
}

// NewApp builds a Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Toolverse API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler renders errors that escape handlers, e.g. unmatched routes.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code := ""
		if fe.Code == fiber.StatusNotFound {
			code = models.CodeNotFound
		}
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message, Code: code})
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	// tracing first so ContextMiddleware can copy the trace id into the request context
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Toolverse Metrics Dashboard",
	}))

	api.Get("/swagger/*", swagger.HandlerDefault)

	identity := auth.Required(s.identity)

	tools := api.Group("/tools")
	tools.Get("/", s.GetTools)
	// /compare before /:id
	tools.Get("/compare", s.CompareTools)
	tools.Get("/:id", s.GetTool)
	tools.Post("/", middleware.RateLimit(s.redis, 5, 10*time.Minute, "submit_tool"), identity, s.CreateTool)

	blog := api.Group("/blog")
	blog.Get("/", s.GetBlogPosts)
	blog.Get("/:id", s.GetBlogPost)
	blog.Post("/", middleware.RateLimit(s.redis, 5, 10*time.Minute, "submit_post"), identity, s.CreateBlogPost)

	users := api.Group("/users")
	users.Post("/", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.CreateUser)

	// Route-level identity middleware only; a group Use on /api/user would also match /api/users.
	api.Get("/user", identity, s.GetCurrentUser)
	api.Get("/user/feature-flags", identity, s.GetFeatureFlags)
	api.Get("/user/tools", identity, s.GetUserTools)
	api.Post("/user/tools", identity, s.AddUserTool)
	api.Patch("/user/tools/:toolId", identity, s.UpdateUserTool)
	api.Delete("/user/tools/:toolId", identity, s.RemoveUserTool)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The memory store has no database to
// ping, and Redis is optional so an unreachable cache only degrades the report.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "not_configured"
	if s.db != nil {
		dbStatus = "healthy"
		if err := database.Ping(ctx, s.db); err != nil {
			dbStatus = "unhealthy"
		}
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	switch {
	case dbStatus == "unhealthy":
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	case redisStatus == "unhealthy":
		overallStatus = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Toolverse",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"store":    s.store.Backend,
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	s.app = s.NewApp()

	if err := s.notifier.StartSubmissionSubscriber(s.shutdownCtx, s.logSubmission); err != nil {
		middleware.Logger.Warn("failed to start submission subscriber", slog.String("error", err.Error()))
	}

	middleware.Logger.Info("server starting",
		slog.String("port", s.config.Port),
		slog.String("store", s.store.Backend),
		slog.Bool("cache", s.cache.Enabled()),
	)
	return s.app.Listen(":" + s.config.Port)
}

func (s *Server) logSubmission(sub notifications.Submission) {
	middleware.Logger.Info("catalog submission received",
		slog.String("kind", sub.Kind),
		slog.String("id", sub.ID),
		slog.String("title", sub.Title),
		slog.String("category", sub.Category),
	)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	var errs []error
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
	}

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("close sql db: %w", cerr))
			}
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", rerr))
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return errors.Join(errs...)
}
