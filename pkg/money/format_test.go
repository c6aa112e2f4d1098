package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1,234.50", FormatINR(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "₹0.00", FormatINR(decimal.Zero))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "500", FormatQuantity(decimal.NewFromInt(500)))
	assert.Equal(t, "12.5", FormatQuantity(decimal.RequireFromString("12.5")))
}
