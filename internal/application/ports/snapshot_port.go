package ports

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
)

// SnapshotStore guarda la última foto buena de tanques por organización.
// Load devuelve (nil, nil) si no hay snapshot.
type SnapshotStore interface {
	SaveTanks(ctx context.Context, snap dto.TankSnapshot) error
	LoadTanks(ctx context.Context, organizationID string) (*dto.TankSnapshot, error)
}
