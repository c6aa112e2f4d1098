package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
)

func TestRenderMonthlySummary(t *testing.T) {
	in := dto.MonthlySummary{
		Organization: "Sri Ganesh Fuels",
		MonthLabel:   "October 2026",
		GeneratedAt:  time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Sales: dto.SalesSummaryDTO{
			Records:    3,
			TotalSales: decimal.NewFromInt(1000),
			FuelDistribution: []dto.ShareDTO{
				{Name: "Diesel", Value: decimal.NewFromInt(600), Percent: 60},
				{Name: "Petrol", Value: decimal.NewFromInt(400), Percent: 40},
			},
		},
		Expenses: dto.ExpenseSummaryDTO{Count: 1, Total: decimal.NewFromInt(200)},
		Net:      decimal.NewFromInt(800),
	}

	out, err := NewMarotoPDFGenerator().RenderMonthlySummary(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestRenderMonthlySummary_MesVacio(t *testing.T) {
	out, err := NewMarotoPDFGenerator().RenderMonthlySummary(context.Background(), dto.MonthlySummary{MonthLabel: "November 2026"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
