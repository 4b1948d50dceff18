package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/armeria-api/pkg/logger"
)

func TestNamed_AgregaComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info").Named("usecase.item")

	l.Info().Str("name", "wooden staff").Msg("item creado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "usecase.item", line["component"])
	assert.Equal(t, "wooden staff", line["name"])
	assert.Equal(t, "item creado", line["message"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")

	l.Info().Msg("no debe aparecer")
	l.Debug().Msg("tampoco")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sí")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
