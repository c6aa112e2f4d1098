package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Ventas del día y del mes para todos; owner y manager ven además gastos,
// depósitos y tanques, y un empleado ve su propia jornada.
type DashboardSummaryDTO struct {
	Role string `json:"role"`

	// Ventas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayLiters decimal.Decimal `json:"today_liters"`

	MonthlySales decimal.Decimal `json:"monthly_sales"`

	// nil para empleados: los campos no aparecen en el JSON.
	*ManagementSummaryDTO

	Shift *ShiftSummaryDTO `json:"shift,omitempty"`

	// Ventas de los últimos 7 días
	Daily []DayDTO `json:"daily"`

	DateLabel string `json:"date_label"` // ej: "October 2026"
}

// ManagementSummaryDTO KPIs financieros y de tanques del mes en curso.
type ManagementSummaryDTO struct {
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"` // solo aprobados
	MonthlyDeposits decimal.Decimal `json:"monthly_deposits"`

	ActiveTanks int       `json:"active_tanks"`
	LowTanks    []TankDTO `json:"low_tanks"`
}

// ShiftSummaryDTO jornada del empleado de la sesión.
type ShiftSummaryDTO struct {
	CheckedInToday bool            `json:"checked_in_today"`
	DaysPresent    int             `json:"days_present"` // mes en curso
	HoursThisMonth decimal.Decimal `json:"hours_this_month"`
	PendingTasks   int             `json:"pending_tasks"`
}
