package sqlite

import (
	"context"
	"database/sql"
	"testing"
)

// NewTestDB crea una base SQLite en memoria con el esquema aplicado.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("abrir base de prueba: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
