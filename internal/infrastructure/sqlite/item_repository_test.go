package sqlite_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/armeria-api/pkg/clock"
)

func TestItemRepo_InsertYReleer(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByName(ctx, "wooden staff")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	id, err := repo.Insert(ctx, entity.NewItem("wooden staff", entity.CategoryStaff, clock.Epoch()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "wooden staff", got.Name)
	assert.Equal(t, "Staff", got.Category)
	assert.True(t, got.CreatedAt.Equal(time.Unix(0, 0)), "created_at = %v", got.CreatedAt)
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt))

	byName, err := repo.FindByName(ctx, "wooden staff")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
}

func TestItemRepo_IdsSecuenciales(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))
	ctx := context.Background()

	first, err := repo.Insert(ctx, entity.NewItem("wooden staff", entity.CategoryStaff, clock.Epoch()))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, entity.NewItem("iron sword", entity.CategorySword, clock.Epoch()))
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestItemRepo_IndiceUnico(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, entity.NewItem("iron sword", entity.CategorySword, clock.Epoch()))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, entity.NewItem("iron sword", entity.CategoryStaff, clock.Epoch()))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "insert", se.Op)
}

func TestItemRepo_InsertConIDEsRechazado(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))

	item := entity.NewItem("x", entity.CategoryStaff, clock.Epoch())
	item.ID = 9
	_, err := repo.Insert(context.Background(), item)

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestItemRepo_FindByIDInexistente(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))

	_, err := repo.FindByID(context.Background(), 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestItemRepo_CategoriaCrudaSeConserva(t *testing.T) {
	db := sqlite.NewTestDB(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (name, category, created_at, updated_at) VALUES ('arco', 'Bow', ?, ?)`,
		time.Unix(0, 0).UTC(), time.Unix(0, 0).UTC())
	require.NoError(t, err)

	got, err := sqlite.NewItemRepository(db).FindByName(ctx, "arco")
	require.NoError(t, err)
	assert.Equal(t, "Bow", got.Category)
	_, ok := got.CategoryOf()
	assert.False(t, ok)
}

func TestItemRepo_InsertsConcurrentesDelMismoNombre(t *testing.T) {
	repo := sqlite.NewItemRepository(sqlite.NewTestDB(t))
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Insert(ctx, entity.NewItem("magic staff", entity.CategoryStaff, clock.Epoch()))
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrDuplicate))
	}
	assert.Equal(t, 1, ok, "sólo un insert debe ganar")
}
