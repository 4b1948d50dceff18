package repository

import (
	"context"

	"github.com/jhoicas/armeria-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
//
// Los fallos del almacenamiento se devuelven como *domain.StoreError.
// La unicidad de nombres es regla de negocio del caso de uso; las implementaciones
// además la respaldan con un índice único e informan domain.ErrDuplicate en Insert.
type ItemRepository interface {
	// FindByName devuelve domain.ErrNotFound si no existe un item con ese nombre.
	FindByName(ctx context.Context, name string) (*entity.Item, error)
	// Insert persiste un item sin id y devuelve el id generado (> 0).
	Insert(ctx context.Context, item *entity.Item) (int64, error)
	// FindByID devuelve domain.ErrNotFound si el id no existe.
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
}
