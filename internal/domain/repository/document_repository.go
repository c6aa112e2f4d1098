package repository

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// DocumentRepository documentos regulatorios y su estado de vigencia.
type DocumentRepository interface {
	Collection[entity.Document]
	LifecycleStatus(ctx context.Context, scope Scope) ([]entity.DocumentLifecycle, error)
}
