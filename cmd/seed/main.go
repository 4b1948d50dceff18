// seed carga un catálogo de items desde XML usando el mismo caso de uso que la API.
//
// Uso: go run ./cmd/seed [ruta/catalogo.xml]
// Formato: <catalogo><item nombre="Báculo de roble" categoria="Staff"/></catalogo>
package main

import (
	"context"
	"os"

	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/infrastructure/store"
	"github.com/jhoicas/armeria-api/pkg/clock"
	"github.com/jhoicas/armeria-api/pkg/config"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	items, err := leerCatalogo(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo")
	}

	ctx := context.Background()
	repo, closeStore, err := store.OpenItemRepository(ctx, cfg.DB, cfg.App.Name+"-seed", log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStore()

	res := cargar(ctx, usecase.NewItemUseCase(repo, clock.Real{}, log), items, log)
	log.Info().
		Int("creados", res.Creados).
		Int("duplicados", res.Duplicados).
		Int("fallidos", res.Fallidos).
		Msg("catálogo cargado")
	if res.Fallidos > 0 {
		os.Exit(1)
	}
}
