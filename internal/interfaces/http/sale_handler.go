package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP del libro de ventas.
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody("INVALID_BODY", "cuerpo inválido"))
	}
	venta, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	venta, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// Update PUT /api/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody("INVALID_BODY", "cuerpo inválido"))
	}
	venta, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// Delete DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterPayment POST /api/sales/:id/payments
func (h *SaleHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody("INVALID_BODY", "cuerpo inválido"))
	}
	venta, err := h.uc.RegisterPayment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// ReceiptSuggestion GET /api/sales/receipt-suggestion
func (h *SaleHandler) ReceiptSuggestion(c *fiber.Ctx) error {
	resp, err := h.uc.SuggestNextReceiptNumber(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ReceiptAvailable GET /api/sales/receipt-available?value=REC-1043
func (h *SaleHandler) ReceiptAvailable(c *fiber.Ctx) error {
	resp, err := h.uc.CheckReceiptAvailable(c.UserContext(), c.Query("value"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
