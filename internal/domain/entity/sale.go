package entity

import "github.com/shopspring/decimal"

// SaleRecord registro de venta por turno/producto (sale-history y sales).
type SaleRecord struct {
	ID               ID              `json:"id"`
	OrganizationID   string          `json:"organizationId,omitempty"`
	EmpID            string          `json:"empId,omitempty"`
	ProductName      string          `json:"productName"`
	Guns             string          `json:"guns,omitempty"`
	SalesInLiters    decimal.Decimal `json:"salesInLiters"`
	SalesInRupees    decimal.Decimal `json:"salesInRupees"`
	CashReceived     decimal.Decimal `json:"cashReceived"`
	PhonePay         decimal.Decimal `json:"phonePay"`
	CreditCard       decimal.Decimal `json:"creditCard"`
	ShortCollections decimal.Decimal `json:"shortCollections"`
	DateTime         Timestamp       `json:"dateTime"`
}

// Métodos de pago usados en el reparto por forma de cobro.
const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
	PaymentCard = "Card"
)
