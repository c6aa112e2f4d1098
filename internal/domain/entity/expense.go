package entity

import "github.com/shopspring/decimal"

// Estados de gasto.
const (
	ExpensePending  = "pending"
	ExpenseApproved = "approved"
	ExpenseRejected = "rejected"
)

// Expense gasto operativo de la estación.
type Expense struct {
	ID          ID              `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	RequestedBy string          `json:"requestedBy,omitempty"`
	ApprovedBy  string          `json:"approvedBy,omitempty"`
	Status      string          `json:"status"`
	Receipt     string          `json:"receipt,omitempty"`
}
