package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC          *usecase.ItemUseCase
	Log             *logger.Logger
	JWTSecret       string // vacío: rutas de items sin autenticación
	RateLimitPerMin int    // 0: sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	items := api.Group("/items")
	if deps.JWTSecret != "" {
		items.Use(AuthMiddleware(deps.JWTSecret))
	}
	limit := RateLimit(deps.RateLimitPerMin)
	itemHandler := NewItemHandler(deps.ItemUC, deps.Log)
	items.Post("/", limit, itemHandler.Create)
	items.Post("/staff", limit, itemHandler.CreateInCategory(entity.CategoryStaff))
	items.Post("/sword", limit, itemHandler.CreateInCategory(entity.CategorySword))
}
