package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name         string
	AllowOrigins string // lista separada por comas; vacío equivale a "*"
}

// NewApp construye la aplicación Fiber con middlewares comunes, /health y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))

	origins := strings.TrimSpace(cfg.AllowOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Accept,Authorization,Content-Type,X-Request-ID",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}
