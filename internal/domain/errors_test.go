package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/armeria-api/internal/domain"
)

func TestItemError_Mensajes(t *testing.T) {
	cause := domain.NewStoreError("insert", errors.New("conexión cerrada"))

	assert.Equal(t, "categoría inválida: Bow", domain.InvalidCategory("Bow").Error())
	assert.Equal(t, "el item ya existe: wooden staff", domain.ItemAlreadyExists("wooden staff").Error())
	assert.Equal(t, "error al agregar item: store insert: conexión cerrada", domain.AddingItemError(cause).Error())
	assert.Equal(t, "item no encontrado: 7", domain.ItemNotFound(7, domain.ErrNotFound).Error())
}

func TestItemError_IsYAs(t *testing.T) {
	err := fmt.Errorf("uc.Add: %w", domain.ItemAlreadyExists("x"))

	assert.True(t, errors.Is(err, domain.ErrItemAlreadyExists))
	assert.False(t, errors.Is(err, domain.ErrItemNotFound))

	var ie *domain.ItemError
	assert.True(t, errors.As(err, &ie))
	assert.Equal(t, domain.KindItemAlreadyExists, ie.Kind)
	assert.Equal(t, "x", ie.Name)
}

func TestItemError_ConservaCausa(t *testing.T) {
	err := domain.AddingItemError(domain.NewStoreError("insert", domain.ErrMissingID))

	assert.True(t, errors.Is(err, domain.ErrAddingItem))
	assert.True(t, errors.Is(err, domain.ErrMissingID), "la causa del almacenamiento se conserva para logging")

	var se *domain.StoreError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "insert", se.Op)
}

func TestItemErrorKind_String(t *testing.T) {
	assert.Equal(t, "InvalidCategory", domain.KindInvalidCategory.String())
	assert.Equal(t, "AddingItemError", domain.KindAddingItem.String())
	assert.Equal(t, "ItemErrorKind(99)", domain.ItemErrorKind(99).String())
}
