package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// SaleRepository ventas registradas y su histórico por rango de fechas.
type SaleRepository interface {
	Collection[entity.SaleRecord]
	// ListByDate consulta sale-history/by-date con extremos inclusivos.
	ListByDate(ctx context.Context, scope Scope, from, to time.Time) ([]entity.SaleRecord, error)
}
