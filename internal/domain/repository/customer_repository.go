package repository

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// CustomerRepository clientes a crédito y su histórico de movimientos.
type CustomerRepository interface {
	Collection[entity.Customer]
	History(ctx context.Context, scope Scope, opts ListOptions) (*Page[entity.CustomerHistory], error)
}
