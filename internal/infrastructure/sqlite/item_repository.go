package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre SQLite.
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// FindByName obtiene un item por nombre exacto.
func (r *ItemRepo) FindByName(ctx context.Context, name string) (*entity.Item, error) {
	return r.findOne(ctx, "find_by_name",
		`SELECT id, name, category, created_at, updated_at FROM items WHERE name = ? LIMIT 1`, name)
}

// FindByID obtiene un item por ID.
func (r *ItemRepo) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.findOne(ctx, "find_by_id",
		`SELECT id, name, category, created_at, updated_at FROM items WHERE id = ?`, id)
}

// Insert persiste un item nuevo y devuelve el id generado.
func (r *ItemRepo) Insert(ctx context.Context, item *entity.Item) (int64, error) {
	if item == nil || item.ID != 0 {
		return 0, domain.NewStoreError("insert", fmt.Errorf("%w: el item ya tiene id", domain.ErrInvalidInput))
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO items (name, category, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		item.Name, item.Category, item.CreatedAt.UTC(), item.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NewStoreError("insert", fmt.Errorf("%w: %v", domain.ErrDuplicate, err))
		}
		return 0, domain.NewStoreError("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, domain.NewStoreError("insert", err)
	}
	if id <= 0 {
		return 0, domain.NewStoreError("insert", domain.ErrMissingID)
	}
	return id, nil
}

func (r *ItemRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.Item, error) {
	var it entity.Item
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&it.ID, &it.Name, &it.Category, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	return &it, nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
