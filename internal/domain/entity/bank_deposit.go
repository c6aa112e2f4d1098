package entity

import "github.com/shopspring/decimal"

// BankDeposit depósito bancario con comprobante opcional.
type BankDeposit struct {
	ID              ID              `json:"id"`
	DepositDate     Date            `json:"depositDate"`
	Amount          decimal.Decimal `json:"amount"`
	BankName        string          `json:"bankName"`
	AccountNumber   string          `json:"accountNumber"`
	ReferenceNumber string          `json:"referenceNumber"`
	DepositedBy     string          `json:"depositedBy"`
	Notes           string          `json:"notes,omitempty"`
	ReceiptURL      string          `json:"receiptUrl,omitempty"`
}
