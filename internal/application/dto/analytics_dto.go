package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareDTO parte de un reparto con su porcentaje redondeado.
type ShareDTO struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent int             `json:"percent"`
}

// DayDTO cubeta diaria del desglose de 7 días.
type DayDTO struct {
	Date  string          `json:"date"`  // YYYY-MM-DD
	Label string          `json:"label"` // "Mon 02"
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// SalesQuery filtro del histórico de ventas. Preset today|week|month|custom.
type SalesQuery struct {
	Preset string `query:"preset" validate:"omitempty,oneof=today week month custom"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// SalesSummaryDTO totales del histórico de ventas del rango.
type SalesSummaryDTO struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	Records          int             `json:"records"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalLiters      decimal.Decimal `json:"total_liters"`
	CashReceived     decimal.Decimal `json:"cash_received"`
	PhonePay         decimal.Decimal `json:"phone_pay"`
	CreditCard       decimal.Decimal `json:"credit_card"`
	ShortCollections decimal.Decimal `json:"short_collections"`
	FuelDistribution []ShareDTO      `json:"fuel_distribution"`
	PaymentMethods   []ShareDTO      `json:"payment_methods"`
	Daily            []DayDTO        `json:"daily"`
}

// ExpenseSummaryDTO resumen de gastos.
type ExpenseSummaryDTO struct {
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
	Pending       int             `json:"pending"`
	ApprovedToday int             `json:"approved_today"`
	Average       decimal.Decimal `json:"average"`
	ByCategory    []ShareDTO      `json:"by_category"`
	Daily         []DayDTO        `json:"daily"`
}

// DepositSummaryDTO resumen de depósitos bancarios, opcionalmente filtrado por búsqueda.
type DepositSummaryDTO struct {
	TotalCount  int             `json:"total_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TodayCount  int             `json:"today_count"`
	TodayAmount decimal.Decimal `json:"today_amount"`
	MonthCount  int             `json:"month_count"`
	MonthAmount decimal.Decimal `json:"month_amount"`
	ByBank      []ShareDTO      `json:"by_bank"`
	Search      string          `json:"search,omitempty"`
}

// BorrowerSummaryDTO resumen de clientes a crédito.
type BorrowerSummaryDTO struct {
	Customers        int             `json:"customers"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalBorrowed    decimal.Decimal `json:"total_borrowed"`
	TotalRepaid      decimal.Decimal `json:"total_repaid"`
	CollectionRate   int             `json:"collection_rate"`
	NearLimit        []string        `json:"near_limit"`
}

// AttendanceSummaryDTO resumen de asistencia del día.
type AttendanceSummaryDTO struct {
	Date         string          `json:"date"`
	PresentToday int             `json:"present_today"`
	AbsentToday  int             `json:"absent_today"`
	AverageHours decimal.Decimal `json:"average_hours"`
	Records      int             `json:"records"`
}
