package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Task statuses aceptados en el filtro de tareas propias.
var taskStatuses = map[string]bool{"": true, "pending": true, "in-progress": true, "completed": true}

// EmployeeUseCase gestión de empleados y vistas propias del empleado logueado.
type EmployeeUseCase struct {
	employees  repository.Collection[entity.Employee]
	attendance repository.AttendanceRepository
	tasks      repository.TaskRepository
	duties     repository.DutyRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	employees repository.Collection[entity.Employee],
	attendance repository.AttendanceRepository,
	tasks repository.TaskRepository,
	duties repository.DutyRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, attendance: attendance, tasks: tasks, duties: duties}
}

// List listado paginado de empleados.
func (uc *EmployeeUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.Employee], error) {
	return listPage(ctx, uc.employees, s, p, identity[entity.Employee])
}

// Create da de alta un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, s *session.Session, in dto.EmployeeRequest) (*entity.Employee, error) {
	e, err := buildEmployee(s, in)
	if err != nil {
		return nil, err
	}
	created, err := uc.employees.Create(ctx, s.Scope(), employeePayload(e))
	if err != nil {
		return nil, fmt.Errorf("employees: crear: %w", err)
	}
	out := orSent(created, e)
	return &out, nil
}

// Update reemplaza el empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.EmployeeRequest) (*entity.Employee, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	e, err := buildEmployee(s, in)
	if err != nil {
		return nil, err
	}
	e.ID = entity.ID(id)
	updated, err := uc.employees.Update(ctx, s.Scope(), id, employeePayload(e))
	if err != nil {
		return nil, fmt.Errorf("employees: actualizar: %w", err)
	}
	out := orSent(updated, e)
	return &out, nil
}

// Delete da de baja un empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.employees.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("employees: eliminar: %w", err)
	}
	return nil
}

// MyAttendance asistencia del empleado de la sesión.
func (uc *EmployeeUseCase) MyAttendance(ctx context.Context, s *session.Session) ([]entity.Attendance, error) {
	empID, err := ownEmpID(s)
	if err != nil {
		return nil, err
	}
	out, err := uc.attendance.ListByEmployee(ctx, s.Scope(), empID)
	if err != nil {
		return nil, fmt.Errorf("employees: asistencia propia: %w", err)
	}
	return nonNil(out), nil
}

// MyTasks tareas del empleado de la sesión; status vacío = todas.
func (uc *EmployeeUseCase) MyTasks(ctx context.Context, s *session.Session, status string) ([]entity.Task, error) {
	empID, err := ownEmpID(s)
	if err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !taskStatuses[status] {
		return nil, validation.Fail("status", "debe ser uno de: pending in-progress completed")
	}
	out, err := uc.tasks.ListByEmployee(ctx, s.Scope(), empID, status)
	if err != nil {
		return nil, fmt.Errorf("employees: tareas propias: %w", err)
	}
	return nonNil(out), nil
}

// MyDuties turnos asignados al empleado de la sesión.
func (uc *EmployeeUseCase) MyDuties(ctx context.Context, s *session.Session) ([]entity.Duty, error) {
	empID, err := ownEmpID(s)
	if err != nil {
		return nil, err
	}
	out, err := uc.duties.ListByEmployee(ctx, s.Scope(), empID)
	if err != nil {
		return nil, fmt.Errorf("employees: turnos propios: %w", err)
	}
	return nonNil(out), nil
}

func ownEmpID(s *session.Session) (string, error) {
	if strings.TrimSpace(s.EmpID) == "" {
		return "", fmt.Errorf("sesión sin emp_id: %w", domain.ErrForbidden)
	}
	return s.EmpID, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func buildEmployee(s *session.Session, in dto.EmployeeRequest) (entity.Employee, error) {
	in.EmpID = strings.TrimSpace(in.EmpID)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return entity.Employee{}, err
	}
	joined, err := validation.ParseDate("joining_date", in.JoiningDate)
	if err != nil {
		return entity.Employee{}, err
	}
	e := entity.Employee{
		EmpID:          in.EmpID,
		Username:       in.Username,
		Email:          in.Email,
		Phone:          strings.TrimSpace(in.Phone),
		Role:           entity.NormalizeRole(in.Role),
		Shift:          in.Shift,
		Salary:         in.Salary,
		OrganizationID: s.OrganizationID,
	}
	if !joined.IsZero() {
		e.JoiningDate = entity.NewDate(joined)
	}
	return e, nil
}

func employeePayload(e entity.Employee) map[string]any {
	m := map[string]any{
		"empId":          e.EmpID,
		"username":       e.Username,
		"email":          e.Email,
		"phone":          e.Phone,
		"role":           e.Role,
		"shift":          e.Shift,
		"salary":         e.Salary,
		"organizationId": e.OrganizationID,
	}
	if !e.JoiningDate.IsZero() {
		m["joiningDate"] = e.JoiningDate
	}
	if e.ID != "" {
		m["id"] = e.ID
	}
	return m
}
