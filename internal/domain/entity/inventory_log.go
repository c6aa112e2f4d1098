package entity

import "github.com/shopspring/decimal"

// InventoryLog foto histórica de un tanque (inventory-logs).
type InventoryLog struct {
	ID            ID              `json:"id"`
	InventoryID   ID              `json:"inventoryId,omitempty"`
	ProductID     ID              `json:"productId,omitempty"`
	ProductName   string          `json:"productName"`
	StockValue    decimal.Decimal `json:"stockValue"`
	CurrentLevel  decimal.Decimal `json:"currentLevel"`
	TankCapacity  decimal.Decimal `json:"tankCapacity"`
	TotalCapacity decimal.Decimal `json:"totalCapacity"`
	Status        Flag            `json:"status"`
	LastUpdated   Timestamp       `json:"lastUpdated"`
}

// Capacity usa totalCapacity y cae a tankCapacity si viene vacío.
func (l InventoryLog) Capacity() decimal.Decimal {
	if l.TotalCapacity.IsPositive() {
		return l.TotalCapacity
	}
	return l.TankCapacity
}
