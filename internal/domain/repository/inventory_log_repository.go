package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// InventoryLogRepository histórico de niveles de tanque.
type InventoryLogRepository interface {
	Collection[entity.InventoryLog]
	// ListByProduct filtra por producto; from/to cero no limitan.
	ListByProduct(ctx context.Context, scope Scope, productID string, from, to time.Time) ([]entity.InventoryLog, error)
}
