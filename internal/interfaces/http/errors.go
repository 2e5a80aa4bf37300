package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
)

func errBody(code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: message}
}

// respondError traduce errores de dominio a estado y código HTTP. Los errores
// no clasificados no exponen detalle interno al cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrFutureDate):
		return c.Status(fiber.StatusBadRequest).JSON(errBody("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrOverpayment):
		return c.Status(fiber.StatusBadRequest).JSON(errBody("OVERPAYMENT", err.Error()))
	case errors.Is(err, domain.ErrDuplicateReceipt):
		return c.Status(fiber.StatusConflict).JSON(errBody("DUPLICATE_RECEIPT", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errBody("NOT_FOUND", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(errBody("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(errBody("FORBIDDEN", "requiere rol administrador"))
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(errBody("STORE_UNAVAILABLE", "almacén de datos no disponible"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errBody("INTERNAL", "error interno"))
}
