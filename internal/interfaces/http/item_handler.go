package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/armeria-api/internal/application/dto"
	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/pkg/logger"
)

// ItemHandler maneja las peticiones HTTP para Item.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ItemHandler{uc: uc, log: log.Named("http.item")}
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Nombre y categoría (Staff | Sword)"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	return h.add(c, in)
}

// CreateInCategory godoc
// @Summary      Crear item de una categoría fija
// @Description  La categoría la fija la ruta; si el cuerpo trae otra se responde INVALID_CATEGORY.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Nombre (category opcional)"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/staff [post]
// @Router       /api/items/sword [post]
func (h *ItemHandler) CreateInCategory(category entity.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateItemRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
		}
		if in.Category == "" {
			in.Category = category
		}
		if in.Category != category {
			status, body := mapItemError(domain.InvalidCategory(string(in.Category)))
			return c.Status(status).JSON(body)
		}
		return h.add(c, in)
	}
}

func (h *ItemHandler) add(c *fiber.Ctx, in dto.CreateItemRequest) error {
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		status, body := mapItemError(err)
		ev := h.log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = h.log.Error()
		}
		ev.Err(err).Str("request_id", GetRequestID(c)).Int("status", status).Msg("crear item")
		return c.Status(status).JSON(body)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
