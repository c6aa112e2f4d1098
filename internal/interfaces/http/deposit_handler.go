package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
)

// DepositHandler depósitos bancarios y comprobantes.
type DepositHandler struct {
	uc *usecase.DepositUseCase
}

// NewDepositHandler construye el handler.
func NewDepositHandler(uc *usecase.DepositUseCase) *DepositHandler {
	return &DepositHandler{uc: uc}
}

// List godoc
// @Summary      Listar depósitos
// @Tags         deposits
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (base 0)"
// @Param        size  query  int  false  "Tamaño"
// @Success      200   {object}  dto.ListResponse[entity.BankDeposit]
// @Router       /api/bank-deposits [get]
func (h *DepositHandler) List(c *fiber.Ctx) error {
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
		return respondError(c, err, "no se pudieron cargar los depósitos")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar depósito
// @Tags         deposits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DepositRequest  true  "Depósito"
// @Success      201   {object}  entity.BankDeposit
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bank-deposits [post]
func (h *DepositHandler) Create(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), s, in)
	if err != nil {
		return respondError(c, err, "no se pudo registrar el depósito")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar depósito
// @Tags         deposits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del depósito"
// @Param        body  body  dto.DepositRequest  true  "Depósito"
// @Success      200   {object}  entity.BankDeposit
// @Router       /api/bank-deposits/{id} [put]
func (h *DepositHandler) Update(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), s, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el depósito")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar depósito
// @Tags         deposits
// @Security     Bearer
// @Param        id   path  string  true  "ID del depósito"
// @Success      204
// @Router       /api/bank-deposits/{id} [delete]
func (h *DepositHandler) Delete(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	if err := h.uc.Delete(c.Context(), s, c.Params("id")); err != nil {
		return respondError(c, err, "no se pudo eliminar el depósito")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Upload godoc
// @Summary      Subir comprobante
// @Description  multipart/form-data con el campo "file"; máximo 10 MB.
// @Tags         deposits
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Comprobante"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/bank-deposits/upload [post]
func (h *DepositHandler) Upload(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, validation.Fail("file", "es requerido"), "")
	}
	f, err := fh.Open()
	if err != nil {
		return invalidBody(c)
	}
	defer f.Close()

	out, err := h.uc.UploadReceipt(c.Context(), s, fh.Filename, fh.Size, f)
	if err != nil {
		return respondError(c, err, "no se pudo subir el comprobante")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download godoc
// @Summary      URL de descarga del comprobante
// @Description  Pide una URL firmada de 60 s y la repara. Con redirect=true responde 302.
// @Tags         deposits
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del depósito"
// @Param        redirect  query  bool    false  "Redirigir a la URL"
// @Success      200  {object}  dto.DownloadResponse
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bank-deposits/{id}/download [get]
func (h *DepositHandler) Download(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.DownloadReceipt(c.Context(), s, c.Params("id"))
	if err != nil {
		return respondError(c, err, "no se pudo obtener el comprobante")
	}
	if c.QueryBool("redirect", false) {
		return c.Redirect(out.URL, fiber.StatusFound)
	}
	return c.JSON(out)
}
