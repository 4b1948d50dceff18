package dto

import (
	"fmt"

	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/pkg/clock"
	"github.com/jhoicas/armeria-api/pkg/textnorm"
)

// MaxNameLength largo máximo del nombre de un item (en runas).
const MaxNameLength = 200

// CreateItemRequest entrada para crear un item.
type CreateItemRequest struct {
	Name     string          `json:"name"`
	Category entity.Category `json:"category"`
}

// Normalized devuelve una copia con el nombre normalizado (NFC, espacios colapsados).
func (r CreateItemRequest) Normalized() CreateItemRequest {
	r.Name = textnorm.Name(r.Name)
	return r
}

// Validate verifica nombre y categoría. Una categoría desconocida es domain.InvalidCategory.
func (r CreateItemRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if n := len([]rune(r.Name)); n > MaxNameLength {
		return fmt.Errorf("%w: name excede %d caracteres", domain.ErrInvalidInput, MaxNameLength)
	}
	if !r.Category.Valid() {
		return domain.InvalidCategory(string(r.Category))
	}
	return nil
}

// ToEntity construye el item a persistir, sin id y con las marcas de tiempo de c.
func (r CreateItemRequest) ToEntity(c clock.Clock) *entity.Item {
	return entity.NewItem(r.Name, r.Category, c)
}

// ItemResponse salida de un item persistido.
type ItemResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category entity.Category `json:"category"`
}

// ToEntity construye un item nuevo a partir de la respuesta (sin id, marcas de tiempo de c).
func (r ItemResponse) ToEntity(c clock.Clock) *entity.Item {
	return entity.NewItem(r.Name, r.Category, c)
}

// ItemResponseFromEntity proyecta un item persistido al modelo de salida.
// Falla con domain.InvalidCategory si la categoría guardada no es reconocida.
func ItemResponseFromEntity(e *entity.Item) (*ItemResponse, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: item nulo", domain.ErrInvalidInput)
	}
	category, ok := e.CategoryOf()
	if !ok {
		return nil, domain.InvalidCategory(e.Category)
	}
	if !e.Persisted() {
		return nil, fmt.Errorf("%w: item sin id", domain.ErrInvalidInput)
	}
	return &ItemResponse{
		ID:       e.ID,
		Name:     e.Name,
		Category: category,
	}, nil
}
