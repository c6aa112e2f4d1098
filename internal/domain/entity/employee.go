package entity

import "github.com/shopspring/decimal"

// Employee empleado de la organización.
type Employee struct {
	ID             ID              `json:"id"`
	EmpID          string          `json:"empId"`
	Username       string          `json:"username"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Role           string          `json:"role"`
	Shift          string          `json:"shift,omitempty"`
	Salary         decimal.Decimal `json:"salary"`
	JoiningDate    Date            `json:"joiningDate"`
	Status         string          `json:"status,omitempty"`
	OrganizationID string          `json:"organizationId,omitempty"`
}

// Attendance registro de asistencia diaria.
type Attendance struct {
	ID             ID        `json:"id"`
	OrganizationID string    `json:"organizationId,omitempty"`
	EmpID          string    `json:"empId"`
	Username       string    `json:"username"`
	CheckIn        Timestamp `json:"checkIn"`
	CheckOut       Timestamp `json:"checkOut"`
	BreakIn        Timestamp `json:"breakIn"`
	BreakOut       Timestamp `json:"breakOut"`
	Working        string    `json:"working,omitempty"`
	Description    string    `json:"description,omitempty"`
	Present        Flag      `json:"present"`
	Absent         Flag      `json:"absent"`
}

// HoursWorked horas entre entrada y salida menos el descanso. Sin salida devuelve 0.
func (a Attendance) HoursWorked() decimal.Decimal {
	if a.CheckIn.IsZero() || a.CheckOut.IsZero() || a.CheckOut.Before(a.CheckIn.Time) {
		return decimal.Zero
	}
	d := a.CheckOut.Sub(a.CheckIn.Time)
	if !a.BreakIn.IsZero() && !a.BreakOut.IsZero() && a.BreakOut.After(a.BreakIn.Time) {
		d -= a.BreakOut.Sub(a.BreakIn.Time)
	}
	return decimal.NewFromFloat(d.Hours()).Round(2)
}

// Task tarea especial asignada a un empleado.
type Task struct {
	ID          ID        `json:"id"`
	EmpID       string    `json:"empId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"` // pending, in-progress, completed
	DueDate     Timestamp `json:"dueDate"`
}

// TaskCompleted estado de una tarea terminada.
const TaskCompleted = "completed"

// Duty turno diario asignado (employee-duties).
type Duty struct {
	ID          ID     `json:"id"`
	EmpID       string `json:"empId"`
	ProductName string `json:"productName,omitempty"`
	GunName     string `json:"gunName,omitempty"`
	Shift       string `json:"shift,omitempty"`
	DutyDate    Date   `json:"dutyDate"`
	Status      string `json:"status"`
}
