package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/report"
)

// ReportHandler descargas de reportes.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MonthlySummary godoc
// @Summary      Resumen mensual en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  string  false  "Mes (YYYY-MM). Default: mes en curso."
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly-summary [get]
func (h *ReportHandler) MonthlySummary(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	f, err := h.uc.MonthlySummary(c.Context(), s, c.Query("month"))
	if err != nil {
		return respondError(c, err, "no se pudo generar el resumen mensual")
	}
	return sendFile(c, f)
}

// Inventory godoc
// @Summary      Inventario en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	f, err := h.uc.InventorySheet(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo generar el reporte de inventario")
	}
	return sendFile(c, f)
}

func sendFile(c *fiber.Ctx, f *report.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, f.Filename))
	return c.Send(f.Content)
}
