package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
)

// CustomerHandler clientes a crédito.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List lista clientes a crédito.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	p, err := pageRequest(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.Context(), s, p)
	if err != nil {
		return respondError(c, err, "no se pudieron cargar los clientes")
	}
	return c.JSON(out)
}

// History movimientos de préstamo y abono.
// GET /api/customers/history
func (h *CustomerHandler) History(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	p, err := pageRequest(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.History(c.Context(), s, p)
	if err != nil {
		return respondError(c, err, "no se pudo cargar el histórico de clientes")
	}
	return c.JSON(out)
}

// Create da de alta un cliente.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), s, in)
	if err != nil {
		return respondError(c, err, "no se pudo registrar el cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update modifica un cliente.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), s, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el cliente")
	}
	return c.JSON(out)
}

// Delete elimina un cliente.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	if err := h.uc.Delete(c.Context(), s, c.Params("id")); err != nil {
		return respondError(c, err, "no se pudo eliminar el cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
