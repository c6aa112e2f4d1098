package dto

import "github.com/shopspring/decimal"

// ── Gastos ────────────────────────────────────────────────────────────────────

// ExpenseRequest alta/edición de gasto.
type ExpenseRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=80"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	RequestedBy string          `json:"requested_by" validate:"omitempty,max=120"`
	Status      string          `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Receipt     string          `json:"receipt" validate:"omitempty,url"`
}

// ExpenseStatusRequest aprobación o rechazo.
type ExpenseStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending approved rejected"`
	ApprovedBy string `json:"approved_by" validate:"omitempty,max=120"`
}

// ── Depósitos bancarios ───────────────────────────────────────────────────────

// DepositRequest alta/edición de depósito.
type DepositRequest struct {
	DepositDate     string          `json:"deposit_date" validate:"required,datetime=2006-01-02"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	BankName        string          `json:"bank_name" validate:"required,max=120"`
	AccountNumber   string          `json:"account_number" validate:"required,max=40"`
	ReferenceNumber string          `json:"reference_number" validate:"omitempty,max=80"`
	DepositedBy     string          `json:"deposited_by" validate:"required,max=120"`
	Notes           string          `json:"notes" validate:"omitempty,max=500"`
	ReceiptURL      string          `json:"receipt_url" validate:"omitempty,url"`
}

// UploadResponse URL almacenada de un comprobante.
type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// DownloadResponse URL firmada reparada lista para el navegador.
type DownloadResponse struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"` // true si se usó receiptUrl por fallo de la URL firmada
}

// ── Documentos ────────────────────────────────────────────────────────────────

// DocumentRequest alta/edición de documento regulatorio.
type DocumentRequest struct {
	DocumentType      string `json:"document_type" validate:"required,max=120"`
	IssuingAuthority  string `json:"issuing_authority" validate:"required,max=120"`
	IssuedDate        string `json:"issued_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate        string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	RenewalPeriodDays int    `json:"renewal_period_days" validate:"gte=0"`
	ResponsibleParty  string `json:"responsible_party" validate:"required,max=120"`
	FileURL           string `json:"file_url" validate:"omitempty,url"`
	Notes             string `json:"notes" validate:"omitempty,max=1000"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// EmployeeRequest alta/edición de empleado.
type EmployeeRequest struct {
	EmpID       string          `json:"emp_id" validate:"required,max=40"`
	Username    string          `json:"username" validate:"required,max=120"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone" validate:"omitempty,max=20"`
	Role        string          `json:"role" validate:"omitempty,max=40"`
	Shift       string          `json:"shift" validate:"omitempty,max=40"`
	Salary      decimal.Decimal `json:"salary" validate:"gte=0"`
	JoiningDate string          `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
}

// ── Clientes a crédito ────────────────────────────────────────────────────────

// CustomerRequest alta/edición de cliente a crédito.
type CustomerRequest struct {
	Name        string          `json:"customer_name" validate:"required,max=120"`
	Phone       string          `json:"phone_number" validate:"omitempty,max=20"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Address     string          `json:"address" validate:"omitempty,max=300"`
	CreditLimit decimal.Decimal `json:"credit_limit" validate:"gte=0"`
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRequest registro de ventas de un turno.
type SaleRequest struct {
	ProductName      string          `json:"product_name" validate:"required,max=120"`
	Guns             string          `json:"guns" validate:"omitempty,max=80"`
	SalesInLiters    decimal.Decimal `json:"sales_in_liters" validate:"gte=0"`
	SalesInRupees    decimal.Decimal `json:"sales_in_rupees" validate:"gte=0"`
	CashReceived     decimal.Decimal `json:"cash_received" validate:"gte=0"`
	PhonePay         decimal.Decimal `json:"phone_pay" validate:"gte=0"`
	CreditCard       decimal.Decimal `json:"credit_card" validate:"gte=0"`
	ShortCollections decimal.Decimal `json:"short_collections" validate:"gte=0"`
	DateTime         string          `json:"date_time" validate:"omitempty"`
}
