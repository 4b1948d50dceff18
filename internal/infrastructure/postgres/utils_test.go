package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "items_name_key"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no alcanza")))
}
