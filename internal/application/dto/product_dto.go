package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto/tanque.
type CreateProductRequest struct {
	ProductName  string          `json:"product_name" validate:"required,max=120"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	TankCapacity decimal.Decimal `json:"tank_capacity" validate:"gt=0"`
	CurrentLevel decimal.Decimal `json:"current_level" validate:"gte=0"`
	Metric       string          `json:"metric" validate:"omitempty,max=20"`
	Supplier     string          `json:"supplier" validate:"omitempty,max=120"`
	Description  string          `json:"description" validate:"omitempty,max=500"`
	Status       *bool           `json:"status"`
}

// UpdateProductRequest campos opcionales; nil = sin cambio.
type UpdateProductRequest struct {
	ProductName  *string          `json:"product_name" validate:"omitempty,min=1,max=120"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	TankCapacity *decimal.Decimal `json:"tank_capacity" validate:"omitempty,gt=0"`
	CurrentLevel *decimal.Decimal `json:"current_level" validate:"omitempty,gte=0"`
	Metric       *string          `json:"metric" validate:"omitempty,max=20"`
	Supplier     *string          `json:"supplier" validate:"omitempty,max=120"`
	Description  *string          `json:"description" validate:"omitempty,max=500"`
	Status       *bool            `json:"status"`
}

// ProductResponse producto con valores derivados.
type ProductResponse struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	TankCapacity decimal.Decimal `json:"tank_capacity"`
	CurrentLevel decimal.Decimal `json:"current_level"`
	Metric       string          `json:"metric,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	Description  string          `json:"description,omitempty"`
	Active       bool            `json:"active"`
	Percent      int             `json:"percent"`
	Status       string          `json:"stock_status"`
	StockValue   decimal.Decimal `json:"stock_value"`
}
