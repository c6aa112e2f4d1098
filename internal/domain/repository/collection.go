package repository

import "context"

// Scope alcance de una llamada al backend: organización dueña de los datos y
// token del usuario de la sesión.
type Scope struct {
	OrganizationID string
	Token          string
}

// ListOptions paginación y filtros opcionales. Size 0 = sin paginar.
type ListOptions struct {
	Page    int // base 0, como el backend
	Size    int
	Filters map[string]string
}

// Page resultado de un listado. Paged indica si el backend respondió con sobre
// {content, totalElements, ...} o con un array plano.
type Page[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	Number        int
	First         bool
	Last          bool
	Paged         bool
}

// Collection puerto CRUD genérico de un recurso de organización (DIP).
// El payload de Create/Update se envía tal cual como JSON.
type Collection[T any] interface {
	List(ctx context.Context, scope Scope, opts ListOptions) (*Page[T], error)
	Get(ctx context.Context, scope Scope, id string) (*T, error)
	Create(ctx context.Context, scope Scope, payload any) (*T, error)
	Update(ctx context.Context, scope Scope, id string, payload any) (*T, error)
	Delete(ctx context.Context, scope Scope, id string) error
}
