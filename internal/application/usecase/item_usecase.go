package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/armeria-api/internal/application/dto"
	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/repository"
	"github.com/jhoicas/armeria-api/pkg/clock"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

// ItemUseCase caso de uso de creación de items: unicidad de nombre, persistencia y relectura.
type ItemUseCase struct {
	repo  repository.ItemRepository
	clock clock.Clock
	log   *logger.Logger
}

// NewItemUseCase construye el caso de uso. log puede ser nil.
func NewItemUseCase(repo repository.ItemRepository, c clock.Clock, log *logger.Logger) *ItemUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ItemUseCase{repo: repo, clock: c, log: log.Named("usecase.item")}
}

// Add crea un item. Cada paso corta la secuencia si falla:
// validación -> FindByName -> construcción -> Insert -> FindByID -> proyección.
// Los errores devueltos son *domain.ItemError salvo domain.ErrInvalidInput en la validación.
func (uc *ItemUseCase) Add(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in = in.Normalized()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByName(ctx, in.Name)
	switch {
	case err == nil && existing != nil:
		uc.log.Warn().Str("name", in.Name).Int64("existing_id", existing.ID).Msg("item duplicado")
		return nil, domain.ItemAlreadyExists(in.Name)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		// Sin poder verificar la unicidad no se inserta.
		uc.log.Error().Err(err).Str("name", in.Name).Msg("verificar unicidad")
		return nil, domain.AddingItemError(err)
	}

	item := in.ToEntity(uc.clock)

	id, err := uc.repo.Insert(ctx, item)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Otra petición insertó el mismo nombre entre la verificación y el insert.
			uc.log.Warn().Str("name", in.Name).Msg("item duplicado detectado por el índice único")
			return nil, domain.ItemAlreadyExists(in.Name)
		}
		uc.log.Error().Err(err).Str("name", in.Name).Msg("insertar item")
		return nil, domain.AddingItemError(err)
	}
	if id <= 0 {
		err := domain.NewStoreError("insert", domain.ErrMissingID)
		uc.log.Error().Err(err).Str("name", in.Name).Int64("id", id).Msg("insertar item")
		return nil, domain.AddingItemError(err)
	}

	stored, err := uc.repo.FindByID(ctx, id)
	if err == nil && (stored == nil || stored.ID != id) {
		err = domain.ErrNotFound
	}
	if err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("anomalía: item insertado no se pudo releer")
		return nil, domain.ItemNotFound(id, err)
	}

	out, err := dto.ItemResponseFromEntity(stored)
	if err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("proyectar item")
		return nil, err
	}

	uc.log.Info().Int64("id", out.ID).Str("name", out.Name).Str("category", out.Category.String()).Msg("item creado")
	return out, nil
}
