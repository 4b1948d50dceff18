package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/armeria-api/internal/application/dto"
	"github.com/jhoicas/armeria-api/pkg/jwt"
)

// Locals keys para Subject y Role en Fiber.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae Subject y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vacío"})
		}
		subject, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetSubject devuelve el Subject del contexto (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetRole devuelve el Role del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
