package postgres

import (
	"context"
	"fmt"
)

// schema tabla de items. El índice único respalda la regla de unicidad de nombres.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    category   TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS items_name_key ON items (name);
`

// EnsureSchema crea la tabla e índices si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
