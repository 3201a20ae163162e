package server

import (
	"log"
	"time"

	"travel-agency-be/internal/bootstrap"
	"travel-agency-be/internal/config"
	"travel-agency-be/internal/pkg/redisstore"
	"travel-agency-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Static
	app.Static("/uploads", cfg.App.UploadDir)

	// Routes
	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	c.LocationController.RegisterRoutes(api)
	c.TourController.RegisterRoutes(api)
	c.SiteInfoController.RegisterRoutes(api)
	c.LeadController.RegisterRoutes(api,
		newLimiter(cfg, cfg.Rate.ApplicationsPerHour),
		newLimiter(cfg, cfg.Rate.ContactsPerHour),
	)
	c.AdminController.RegisterRoutes(api)
}

// newLimiter builds a per-client-IP hourly limiter. With a redis URL
// configured the counters are shared across replicas, otherwise they live in
// process memory.
func newLimiter(cfg *config.Config, perHour int) fiber.Handler {
	limiterCfg := limiter.Config{
		Max:        perHour,
		Expiration: time.Hour,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			return ctx.IP()
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(serverutils.ErrorResponse(429, "Too many requests, try again later"))
		},
	}
	if cfg.App.RedisURL != "" {
		limiterCfg.Storage = redisstore.NewFromURL(cfg.App.RedisURL)
	}
	return limiter.New(limiterCfg)
}
