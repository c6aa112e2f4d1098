package entity

import "github.com/shopspring/decimal"

// Customer cliente a crédito (Borrowers).
type Customer struct {
	ID            ID              `json:"id"`
	Name          string          `json:"customerName"`
	Phone         string          `json:"phoneNumber,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	TotalBorrowed decimal.Decimal `json:"amountBorrowed"`
	TotalRepaid   decimal.Decimal `json:"amountRepaid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Status        string          `json:"status,omitempty"`
}

// Balance pendiente; si el backend no envía outstanding se calcula.
func (c Customer) Balance() decimal.Decimal {
	if !c.Outstanding.IsZero() {
		return c.Outstanding
	}
	return c.TotalBorrowed.Sub(c.TotalRepaid)
}

// NearLimit indica saldo por encima del 80% del límite de crédito.
func (c Customer) NearLimit() bool {
	if !c.CreditLimit.IsPositive() {
		return false
	}
	return c.Balance().GreaterThan(c.CreditLimit.Mul(decimal.RequireFromString("0.8")))
}

// CustomerHistory movimiento de préstamo o abono (customers/history/all).
type CustomerHistory struct {
	ID                ID              `json:"_id"`
	CustomerID        ID              `json:"customerId,omitempty"`
	CustomerName      string          `json:"customerName,omitempty"`
	TransactionType   string          `json:"transactionType,omitempty"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	TransactionDate   Timestamp       `json:"transactionDate"`
	Notes             string          `json:"notes,omitempty"`
}
