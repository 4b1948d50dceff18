package entity

import (
	"time"

	"github.com/jhoicas/armeria-api/pkg/clock"
)

// Item representa un item persistido (o por persistir) en la tabla items.
// ID vale 0 hasta que el almacenamiento lo genera.
type Item struct {
	ID        int64
	Name      string
	Category  string // texto crudo tal como se guarda; ver CategoryOf
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem construye un item nuevo sin id, con created_at = updated_at = c.Now().
func NewItem(name string, category Category, c clock.Clock) *Item {
	now := c.Now()
	return &Item{
		Name:      name,
		Category:  category.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Persisted indica si el item ya tiene id generado.
func (i *Item) Persisted() bool { return i.ID > 0 }

// CategoryOf decodifica la categoría guardada.
func (i *Item) CategoryOf() (Category, bool) {
	return ParseCategory(i.Category)
}
