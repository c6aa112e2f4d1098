package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa un producto combustible y su tanque (Products/Inventory).
// CurrentLevel y TankCapacity vienen en la unidad de Metric (normalmente litros).
type Product struct {
	ID             ID              `json:"id"`
	OrganizationID string          `json:"organizationId,omitempty"`
	ProductName    string          `json:"productName"`
	Price          decimal.Decimal `json:"price"`
	TankCapacity   decimal.Decimal `json:"tankCapacity"`
	CurrentLevel   decimal.Decimal `json:"currentLevel"`
	Metric         string          `json:"metric,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
	Description    string          `json:"description,omitempty"`
	Status         Flag            `json:"status"`
	LastUpdated    Timestamp       `json:"lastUpdated"`
}

// IsActive indica si el tanque participa en alertas y totales de activos.
func (p Product) IsActive() bool { return bool(p.Status) }

// FillPercent porcentaje de llenado redondeado. Capacidad <= 0 devuelve 0.
func (p Product) FillPercent() int {
	return FillPercent(p.CurrentLevel, p.TankCapacity)
}

// FillPercent round(100*current/capacity); capacity <= 0 → 0.
func FillPercent(current, capacity decimal.Decimal) int {
	if capacity.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(current.Mul(decimal.NewFromInt(100)).Div(capacity).Add(decimal.NewFromFloat(0.5)).Floor().IntPart())
}

// StockValue valor del stock actual (nivel * precio).
func (p Product) StockValue() decimal.Decimal {
	return p.CurrentLevel.Mul(p.Price)
}
