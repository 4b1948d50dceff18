package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/armeria-api/internal/application/dto"
	"github.com/jhoicas/armeria-api/internal/domain"
)

// mapItemError traduce errores del caso de uso a status HTTP y cuerpo de error.
// La causa de almacenamiento de AddingItemError no se expone; queda en el log.
func mapItemError(err error) (int, dto.ErrorResponse) {
	var ie *domain.ItemError
	if errors.As(err, &ie) {
		switch ie.Kind {
		case domain.KindInvalidCategory:
			return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_CATEGORY", Error: ie.Error()}
		case domain.KindItemAlreadyExists:
			return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Error: ie.Error()}
		case domain.KindAddingItem:
			return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "ADDING_ITEM", Error: domain.ErrAddingItem.Error()}
		case domain.KindItemNotFound:
			return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Error: ie.Error()}
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Error: "error interno"}
}

// ErrorHandler responde los errores que llegan a Fiber (rutas inexistentes, panics recuperados) con dto.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "error interno"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: codeFor(code), Error: msg})
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "INVALID_BODY"
	default:
		return "INTERNAL"
	}
}
