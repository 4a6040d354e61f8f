// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobhive/internal/cache"
	"jobhive/internal/config"
	"jobhive/internal/database"
	"jobhive/internal/middleware"
	"jobhive/internal/models"
	"jobhive/internal/repository"
	"jobhive/internal/service"
	"jobhive/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	files          storage.FileStore

	userRepo      repository.UserRepository
	jobRepo       repository.JobRepository
	applicantRepo repository.ApplicantRepository
	bookmarkRepo  repository.BookmarkRepository

	userService      *service.UserService
	jobService       *service.JobService
	applicantService *service.ApplicantService
	bookmarkService  *service.BookmarkService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var files storage.FileStore
	if cfg.MinIOEndpoint != "" {
		files, err = storage.NewMinIOStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("object storage init failed: %w", err)
		}
	} else {
		middleware.Logger.Warn("MINIO_ENDPOINT not set, using in-memory file store (uploads lost on restart)")
		files = storage.NewMemoryStore()
	}

	middleware.InitMiddleware(cfg)

	srv := NewServerWithDeps(cfg, db, redisClient, files)
	srv.promMiddleware = middleware.InitMetrics("jobhive-api")
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis/storage.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, files storage.FileStore) *Server {
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	return &Server{
		config:        cfg,
		db:            db,
		redis:         redisClient,
		files:         files,
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		applicantRepo: applicantRepo,
		bookmarkRepo:  bookmarkRepo,

		userService:      service.NewUserService(userRepo, files),
		jobService:       service.NewJobService(jobRepo, applicantRepo, files),
		applicantService: service.NewApplicantService(applicantRepo, jobRepo, files),
		bookmarkService:  service.NewBookmarkService(bookmarkRepo, jobRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
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
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	// Public job routes (browse/search). /search must come before /:id.
	jobs := api.Group("/jobs")
	jobs.Get("/", s.GetJobs)
	jobs.Get("/search", s.SearchJobs)
	jobs.Get("/:id", s.GetJob)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	protectedJobs := protected.Group("/jobs")
	protectedJobs.Post("/", s.CreateJob)
	protectedJobs.Post("/:id/apply", s.ApplyToJob)
	protectedJobs.Put("/:id", s.UpdateJob)
	protectedJobs.Delete("/:id", s.DeleteJob)

	protected.Delete("/applicants/:id", s.DeleteApplicant)

	bookmarks := protected.Group("/bookmarks")
	bookmarks.Get("/", s.GetBookmarks)
	bookmarks.Post("/:jobId", s.AddBookmark)
	bookmarks.Delete("/:jobId", s.RemoveBookmark)

	protected.Get("/dashboard", s.Dashboard)
	protected.Get("/profile", s.GetMyProfile)
	protected.Put("/profile", s.UpdateMyProfile)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is an optional cache; the API serves without it.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start runs the HTTP server until Listen returns.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "JobHive API",
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
