package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/finflux-dashboard/internal/application/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
)

// AnalyticsHandler maneja los resúmenes de ventas, gastos, depósitos, clientes y asistencia.
type AnalyticsHandler struct {
	uc *appanalytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Sales godoc
// @Summary      Resumen del histórico de ventas
// @Description  Totales, reparto por combustible y forma de pago, y desglose de 7 días.
//
//	preset=today|week|month|custom; custom exige from y to.
//
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        preset  query  string  false  "today | week | month | custom"  default(today)
// @Param        from    query  string  false  "Desde (YYYY-MM-DD), solo custom"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD), solo custom"
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var q dto.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.Sales(c.Context(), s, q)
	if err != nil {
		return respondError(c, err, "no se pudo calcular el resumen de ventas")
	}
	return c.JSON(out)
}

// Expenses godoc
// @Summary      Resumen de gastos
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpenseSummaryDTO
// @Router       /api/analytics/expenses [get]
func (h *AnalyticsHandler) Expenses(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Expenses(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo calcular el resumen de gastos")
	}
	return c.JSON(out)
}

// Deposits godoc
// @Summary      Resumen de depósitos bancarios
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Banco, cuenta, referencia o depositante"
// @Success      200  {object}  dto.DepositSummaryDTO
// @Router       /api/analytics/deposits [get]
func (h *AnalyticsHandler) Deposits(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Deposits(c.Context(), s, c.Query("search"))
	if err != nil {
		return respondError(c, err, "no se pudo calcular el resumen de depósitos")
	}
	return c.JSON(out)
}

// Borrowers godoc
// @Summary      Resumen de clientes a crédito
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BorrowerSummaryDTO
// @Router       /api/analytics/borrowers [get]
func (h *AnalyticsHandler) Borrowers(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Borrowers(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo calcular el resumen de clientes")
	}
	return c.JSON(out)
}

// Attendance godoc
// @Summary      Asistencia del día
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceSummaryDTO
// @Router       /api/analytics/attendance [get]
func (h *AnalyticsHandler) Attendance(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Attendance(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo calcular la asistencia")
	}
	return c.JSON(out)
}
