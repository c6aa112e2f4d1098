package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/finflux-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del día y del mes en curso.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (role, today_sales, today_liters, monthly_sales,
// daily[7], date_label). Owner y manager reciben además monthly_expenses,
// monthly_deposits, active_tanks y low_tanks; un empleado recibe shift.
// No requiere parámetros; las fechas se calculan automáticamente en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}

	summary, err := h.uc.GetSummary(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo calcular el resumen")
	}

	return c.JSON(summary)
}
