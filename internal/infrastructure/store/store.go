// Package store elige el repositorio de items según DB_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/armeria-api/internal/domain/repository"
	"github.com/jhoicas/armeria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/armeria-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/armeria-api/pkg/config"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

// OpenItemRepository abre la base configurada, aplica el esquema y devuelve el repositorio
// junto con la función que libera la conexión.
func OpenItemRepository(ctx context.Context, cfg config.DBConfig, appName string, log *logger.Logger) (repository.ItemRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir sqlite: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("almacenamiento listo")
		return sqlite.NewItemRepository(db), func() { _ = db.Close() }, nil
	case config.DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg, appName)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", config.DriverPostgres).Int("max_conns", cfg.MaxConns).Msg("almacenamiento listo")
		return postgres.NewItemRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.Driver)
	}
}
