package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary datos del PDF de resumen mensual.
type MonthlySummary struct {
	Organization string
	MonthLabel   string
	GeneratedAt  time.Time
	Sales        SalesSummaryDTO
	Expenses     ExpenseSummaryDTO
	Deposits     DepositSummaryDTO
	Net          decimal.Decimal // ventas - gastos aprobados
}

// InventoryReport datos de la hoja Excel de inventario.
type InventoryReport struct {
	Organization string
	GeneratedAt  time.Time
	Tanks        []TankDTO
	Products     []ProductResponse
}
