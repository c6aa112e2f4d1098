package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de envío de alerta por tanque.
const (
	AlertSent       = "sent"
	AlertSuppressed = "suppressed"
	AlertFailedPfx  = "failed: "
)

// TankDTO lectura de un tanque con su porcentaje y etiqueta de estado.
type TankDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Metric       string          `json:"metric,omitempty"`
	CurrentLevel decimal.Decimal `json:"current_level"`
	TankCapacity decimal.Decimal `json:"tank_capacity"`
	Percent      int             `json:"percent"`
	Status       string          `json:"status"` // Critical, Low, Medium, Good
	Active       bool            `json:"active"`
	Low          bool            `json:"low"`
	AlertStatus  string          `json:"alert_status,omitempty"`
}

// TankSnapshot última foto buena de los tanques de una organización.
type TankSnapshot struct {
	OrganizationID string    `json:"organization_id"`
	FetchedAt      time.Time `json:"fetched_at"`
	Tanks          []TankDTO `json:"tanks"`
}

// TankOverviewDTO respuesta de GET /api/inventory/tanks.
type TankOverviewDTO struct {
	Tanks          []TankDTO       `json:"tanks"`
	TotalProducts  int             `json:"total_products"`
	ActiveProducts int             `json:"active_products"`
	LowCount       int             `json:"low_count"`
	TotalCapacity  decimal.Decimal `json:"total_capacity"`
	TotalStock     decimal.Decimal `json:"total_stock"`
	Threshold      int             `json:"threshold"`
	FetchedAt      time.Time       `json:"fetched_at"`
	Stale          bool            `json:"stale"` // true si viene del snapshot por fallo del backend
}

// RefreshResultDTO resultado de una pasada de refresco con alertas.
type RefreshResultDTO struct {
	FetchedAt  time.Time         `json:"fetched_at"`
	Tanks      int               `json:"tanks"`
	Notified   []string          `json:"notified"`
	Suppressed []string          `json:"suppressed"`
	Rearmed    []string          `json:"rearmed"`
	Statuses   map[string]string `json:"statuses"`
}

// UpdateLevelRequest ajuste manual del nivel de un tanque.
type UpdateLevelRequest struct {
	CurrentLevel decimal.Decimal `json:"current_level" validate:"gte=0"`
}

// TankHistoryDTO histórico de niveles de un producto.
type TankHistoryDTO struct {
	ProductID string            `json:"product_id"`
	Points    []TankHistoryItem `json:"points"`
	MinPct    int               `json:"min_percent"`
	MaxPct    int               `json:"max_percent"`
	AvgPct    decimal.Decimal   `json:"avg_percent"`
}

// TankHistoryItem punto del histórico.
type TankHistoryItem struct {
	At           time.Time       `json:"at"`
	CurrentLevel decimal.Decimal `json:"current_level"`
	Capacity     decimal.Decimal `json:"capacity"`
	Percent      int             `json:"percent"`
}
