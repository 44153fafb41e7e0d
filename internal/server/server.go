// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	_ "github.com/0xvictorb/slide-alpha-sub000/docs" // swagger docs
	"github.com/0xvictorb/slide-alpha-sub000/internal/cache"
	"github.com/0xvictorb/slide-alpha-sub000/internal/config"
	"github.com/0xvictorb/slide-alpha-sub000/internal/database"
	"github.com/0xvictorb/slide-alpha-sub000/internal/middleware"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"
	"github.com/0xvictorb/slide-alpha-sub000/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	contentRepo    repository.ContentRepository
	userRepo       repository.UserRepository
	commentRepo    repository.CommentRepository
	engagementRepo repository.EngagementRepository
	followRepo     repository.FollowRepository

	feedService       *service.FeedService
	contentService    *service.ContentService
	engagementService *service.EngagementService
	socialService     *service.SocialService
	commentService    *service.CommentService
	userService       *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	followRepo := repository.NewFollowRepository(db)

	prom := middleware.InitMetrics("slide-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		contentRepo:    contentRepo,
		userRepo:       userRepo,
		commentRepo:    commentRepo,
		engagementRepo: engagementRepo,
		followRepo:     followRepo,
	}
	server.feedService = service.NewFeedService(contentRepo, userRepo, cfg.FeedVideoRatio)
	server.contentService = service.NewContentService(contentRepo, userRepo, cfg.PremiumMinFollower)
	server.engagementService = service.NewEngagementService(db, engagementRepo, contentRepo, cfg.ViewCooldown())
	server.socialService = service.NewSocialService(db, followRepo, userRepo)
	server.commentService = service.NewCommentService(commentRepo, contentRepo, userRepo)
	server.userService = service.NewUserService(userRepo)

	middleware.InitMiddleware(cfg)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and wallet
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Tracing (after requestid so spans carry the request id)
	app.Use(middleware.TracingMiddleware())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on errors.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
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

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/wallet", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "auth"), s.WalletLogin)

	// Public feed routes
	feed := api.Group("/feed")
	feed.Get("/", s.GetFeed)
	feed.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchContent)

	// Content routes
	content := api.Group("/content")
	content.Get("/:id", s.GetContent)
	content.Get("/:id/stats", s.GetContentStats)
	content.Get("/:id/comments", s.GetComments)
	content.Get("/:id/comments/count", s.GetCommentCount)
	content.Post("/:id/view", middleware.OptionalAuth, s.RecordView)
	content.Post("/", middleware.AuthRequired, s.CreateContent)
	content.Post("/:id/like", middleware.AuthRequired, s.ToggleLike)
	content.Post("/:id/comments", middleware.AuthRequired, s.CreateComment)
	content.Delete("/:id/comments/:commentId", middleware.AuthRequired, s.DeleteComment)

	// User routes
	users := api.Group("/users")
	users.Get("/:wallet", s.GetUser)
	users.Post("/:wallet/follow", middleware.AuthRequired, s.ToggleFollow)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
