package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	agg "github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
)

// InventoryHandler maneja tanques, alertas de stock bajo y ajustes de nivel.
type InventoryHandler struct {
	monitor *inventory.Monitor
	levels  *inventory.LevelUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(monitor *inventory.Monitor, levels *inventory.LevelUseCase) *InventoryHandler {
	return &InventoryHandler{monitor: monitor, levels: levels}
}

// Tanks godoc
// @Summary      Estado de los tanques
// @Description  Niveles, porcentaje y estado de cada tanque. Si el backend falla se
//
//	devuelve la última foto buena con stale=true.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TankOverviewDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/tanks [get]
func (h *InventoryHandler) Tanks(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.monitor.Overview(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo cargar el inventario")
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Refrescar tanques y evaluar alertas
// @Description  Fuerza una pasada del sondeo: trae los productos, evalúa el umbral y
//
//	envía un SMS por tanque que cruza hacia abajo.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResultDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/refresh [post]
func (h *InventoryHandler) Refresh(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.monitor.Refresh(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo refrescar el inventario")
	}
	return c.JSON(out)
}

// UpdateLevel godoc
// @Summary      Ajustar nivel de un tanque
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateLevelRequest  true  "current_level"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/level [put]
func (h *InventoryHandler) UpdateLevel(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.UpdateLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.levels.UpdateLevel(c.Context(), s, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el nivel")
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Histórico de niveles de un tanque
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {object}  dto.TankHistoryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	from, err := validation.ParseDate("from", c.Query("from"))
	if err != nil {
		return respondError(c, err, "")
	}
	to, err := validation.ParseDate("to", c.Query("to"))
	if err != nil {
		return respondError(c, err, "")
	}
	if !to.IsZero() {
		to = agg.EndOfDay(to)
	}
	out, err := h.levels.History(c.Context(), s, c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err, "no se pudo cargar el histórico")
	}
	return c.JSON(out)
}
