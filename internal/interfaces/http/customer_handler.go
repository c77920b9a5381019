package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/invoices"
)

// CustomerHandler maneja las consultas de clientes (protegido).
type CustomerHandler struct {
	uc *invoices.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *invoices.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List devuelve clientes ordenados por nombre (selector del formulario).
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
