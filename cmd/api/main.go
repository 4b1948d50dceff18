package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/armeria-api/internal/interfaces/http"
	"github.com/jhoicas/armeria-api/pkg/clock"
	"github.com/jhoicas/armeria-api/pkg/config"
	"github.com/jhoicas/armeria-api/pkg/logger"

	_ "github.com/jhoicas/armeria-api/docs"
)

// @title        Armería API
// @version      1.0
// @description  Alta de items (Staff | Sword) con nombre único.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	itemRepo, closeStore, err := store.OpenItemRepository(ctx, cfg.DB, cfg.App.Name, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStore()

	itemUC := usecase.NewItemUseCase(itemRepo, clock.Real{}, log)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
	}, httpRouter.RouterDeps{
		ItemUC:          itemUC,
		Log:             log,
		JWTSecret:       cfg.JWT.Secret,
		RateLimitPerMin: cfg.HTTP.RateLimitPerMin,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Armería API",
	}))

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: rutas de items sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
