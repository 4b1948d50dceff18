package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/armeria-api/pkg/clock"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

func TestLeerCatalogo_UTF8(t *testing.T) {
	items, err := leerCatalogo(strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?>
<catalogo>
  <item nombre="Báculo de roble" categoria="Staff"/>
  <item nombre="Espada larga" categoria="Sword"/>
</catalogo>`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Báculo de roble", items[0].Nombre)
	assert.Equal(t, "Sword", items[1].Categoria)
}

func TestLeerCatalogo_ISO88591(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?><catalogo><item nombre="B`)
	buf.WriteByte(0xE1) // á en Latin-1
	buf.WriteString(`culo" categoria="Staff"/></catalogo>`)

	items, err := leerCatalogo(&buf)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Báculo", items[0].Nombre)
}

func TestLeerCatalogo_CharsetDesconocido(t *testing.T) {
	_, err := leerCatalogo(strings.NewReader(`<?xml version="1.0" encoding="EBCDIC"?><catalogo/>`))
	assert.Error(t, err)
}

func TestCargar(t *testing.T) {
	db := sqlite.NewTestDB(t)
	uc := usecase.NewItemUseCase(sqlite.NewItemRepository(db), clock.Epoch(), logger.Nop())

	res := cargar(context.Background(), uc, []catalogoItem{
		{Nombre: "Báculo", Categoria: "Staff"},
		{Nombre: "Espada", Categoria: "Sword"},
		{Nombre: "Espada", Categoria: "Sword"},
		{Nombre: "Arco", Categoria: "Bow"},
	}, logger.Nop())

	assert.Equal(t, resultado{Creados: 2, Duplicados: 1, Fallidos: 1}, res)
}
