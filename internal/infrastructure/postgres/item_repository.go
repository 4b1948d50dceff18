package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, category, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// FindByName obtiene un item por nombre exacto.
func (r *ItemRepo) FindByName(ctx context.Context, name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1 LIMIT 1`
	return r.findOne(ctx, "find_by_name", query, name)
}

// FindByID obtiene un item por ID.
func (r *ItemRepo) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.findOne(ctx, "find_by_id", query, id)
}

// Insert persiste un item nuevo y devuelve el id generado.
func (r *ItemRepo) Insert(ctx context.Context, item *entity.Item) (int64, error) {
	if item == nil || item.ID != 0 {
		return 0, domain.NewStoreError("insert", fmt.Errorf("%w: el item ya tiene id", domain.ErrInvalidInput))
	}
	query := `
		INSERT INTO items (name, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id *int64
	err := r.q.QueryRow(ctx, query, item.Name, item.Category, item.CreatedAt, item.UpdatedAt).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NewStoreError("insert", fmt.Errorf("%w: %v", domain.ErrDuplicate, err))
		}
		return 0, domain.NewStoreError("insert", err)
	}
	if id == nil || *id <= 0 {
		return 0, domain.NewStoreError("insert", domain.ErrMissingID)
	}
	return *id, nil
}

func (r *ItemRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(ctx, query, arg).Scan(&it.ID, &it.Name, &it.Category, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStoreError(op, err)
	}
	return &it, nil
}
