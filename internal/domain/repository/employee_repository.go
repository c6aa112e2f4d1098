package repository

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// AttendanceRepository asistencia, también filtrable por empleado.
type AttendanceRepository interface {
	Collection[entity.Attendance]
	ListByEmployee(ctx context.Context, scope Scope, empID string) ([]entity.Attendance, error)
}

// TaskRepository tareas especiales por empleado. status vacío = todas.
type TaskRepository interface {
	Collection[entity.Task]
	ListByEmployee(ctx context.Context, scope Scope, empID, status string) ([]entity.Task, error)
}

// DutyRepository turnos diarios por empleado.
type DutyRepository interface {
	Collection[entity.Duty]
	ListByEmployee(ctx context.Context, scope Scope, empID string) ([]entity.Duty, error)
}
