package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/kilhoshin/aissam/internal/bootstrap"
	"github.com/kilhoshin/aissam/internal/config"
	"github.com/kilhoshin/aissam/internal/pkg/serverutils"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, image uploads
	})

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

	// Uploaded images are served back to the frontend from here
	if cfg.Media.Backend == "local" {
		app.Static("/uploads", "./"+cfg.Media.UploadDir)
	}

	registerRoutes(app, container)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "AISSAM API is running"})
	})

	authRequired := serverutils.JwtMiddleware(c.TokenIssuer)

	c.AuthController.RegisterRoutes(app)
	c.SubjectController.RegisterRoutes(app)
	c.UserController.RegisterRoutes(app, authRequired)
	c.ChatController.RegisterRoutes(app, authRequired)
}
