package ports

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
)

// MonthlySummaryRenderer genera el PDF del resumen mensual.
type MonthlySummaryRenderer interface {
	RenderMonthlySummary(ctx context.Context, in dto.MonthlySummary) ([]byte, error)
}

// InventorySheetRenderer genera la hoja Excel de inventario.
type InventorySheetRenderer interface {
	RenderInventorySheet(ctx context.Context, in dto.InventoryReport) ([]byte, error)
}
