package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/armeria-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5, cfg.DB.MaxConns, "pool por defecto de 5 conexiones")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigins)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 120, cfg.HTTP.RateLimitPerMin)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd",
		DBName: "armeria", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/armeria?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
