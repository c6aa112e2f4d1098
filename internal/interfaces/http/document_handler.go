package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
)

// DocumentHandler documentos regulatorios.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Document]
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
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
		return respondError(c, err, "no se pudieron cargar los documentos")
	}
	return c.JSON(out)
}

// Lifecycle godoc
// @Summary      Vigencia de documentos
// @Description  VALID, EXPIRING_SOON o EXPIRED según lo calcula el backend.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.DocumentLifecycle
// @Router       /api/documents/lifecycle [get]
func (h *DocumentHandler) Lifecycle(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Lifecycle(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo cargar la vigencia de documentos")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DocumentRequest  true  "Documento"
// @Success      201   {object}  entity.Document
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), s, in)
	if err != nil {
		return respondError(c, err, "no se pudo registrar el documento")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.DocumentRequest  true  "Documento"
// @Success      200   {object}  entity.Document
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), s, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el documento")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar documento
// @Tags         documents
// @Security     Bearer
// @Param        id   path  string  true  "ID del documento"
// @Success      204
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	if err := h.uc.Delete(c.Context(), s, c.Params("id")); err != nil {
		return respondError(c, err, "no se pudo eliminar el documento")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
