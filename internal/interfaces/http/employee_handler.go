package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/usecase"
)

// EmployeeHandler empleados y vistas propias del empleado logueado.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Employee]
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
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
		return respondError(c, err, "no se pudieron cargar los empleados")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Empleado"
// @Success      201   {object}  entity.Employee
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), s, in)
	if err != nil {
		return respondError(c, err, "no se pudo registrar el empleado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Empleado"
// @Success      200   {object}  entity.Employee
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), s, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el empleado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja de empleado
// @Tags         employees
// @Security     Bearer
// @Param        id   path  string  true  "ID del empleado"
// @Success      204
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	if err := h.uc.Delete(c.Context(), s, c.Params("id")); err != nil {
		return respondError(c, err, "no se pudo eliminar el empleado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MyAttendance asistencia del empleado logueado.
// GET /api/me/attendance
func (h *EmployeeHandler) MyAttendance(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.MyAttendance(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudo cargar la asistencia")
	}
	return c.JSON(out)
}

// MyTasks tareas del empleado logueado; ?status=pending|in-progress|completed.
// GET /api/me/tasks
func (h *EmployeeHandler) MyTasks(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.MyTasks(c.Context(), s, c.Query("status"))
	if err != nil {
		return respondError(c, err, "no se pudieron cargar las tareas")
	}
	return c.JSON(out)
}

// MyDuties turnos del empleado logueado.
// GET /api/me/duties
func (h *EmployeeHandler) MyDuties(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.MyDuties(c.Context(), s)
	if err != nil {
		return respondError(c, err, "no se pudieron cargar los turnos")
	}
	return c.JSON(out)
}
