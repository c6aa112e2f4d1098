package backend

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Resource CRUD genérico sobre /api/organizations/{orgId}/{name}.
type Resource[T any] struct {
	c    *Client
	name string
	long bool // listados grandes usan LongTimeout
}

// NewResource construye el adaptador de un recurso.
func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name}
}

// WithLongTimeout marca el recurso como de listados pesados.
func (r *Resource[T]) WithLongTimeout() *Resource[T] {
	r.long = true
	return r
}

// Name nombre del recurso en la ruta.
func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) listTimeout() time.Duration {
	if r.long {
		return r.c.longTimeout
	}
	return r.c.timeout
}

func listQuery(opts repository.ListOptions) url.Values {
	q := url.Values{}
	if opts.Size > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
		q.Set("size", strconv.Itoa(opts.Size))
	}
	for k, v := range opts.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// List GET del recurso. Tolera array plano, sobre paginado o cualquier otra cosa (lista vacía).
func (r *Resource[T]) List(ctx context.Context, scope repository.Scope, opts repository.ListOptions) (*repository.Page[T], error) {
	return listAt[T](ctx, r.c, call{
		method:  http.MethodGet,
		path:    OrgPath(scope.OrganizationID, r.name),
		query:   listQuery(opts),
		token:   scope.Token,
		timeout: r.listTimeout(),
	})
}

// listAt ejecuta un GET de listado en cualquier sub-ruta.
func listAt[T any](ctx context.Context, c *Client, in call) (*repository.Page[T], error) {
	in.method = http.MethodGet
	raw, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	page, shape, err := DecodeList[T](raw)
	if err != nil {
		return nil, err
	}
	if shape == ShapeUnknown {
		c.log.Debug().Str("path", in.path).Msg("respuesta de listado sin forma conocida, se usa lista vacía")
	}
	return page, nil
}

// Get GET por id. Cuerpo vacío se trata como no encontrado.
func (r *Resource[T]) Get(ctx context.Context, scope repository.Scope, id string) (*T, error) {
	out := new(T)
	raw, err := r.c.do(ctx, call{
		method: http.MethodGet,
		path:   OrgPath(scope.OrganizationID, r.name, id),
		token:  scope.Token,
	})
	if err != nil {
		return nil, err
	}
	if isEmptyBody(raw) {
		return nil, domain.ErrNotFound
	}
	if err := decodeInto(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST del payload. Si el backend no devuelve cuerpo se retorna nil sin error.
func (r *Resource[T]) Create(ctx context.Context, scope repository.Scope, payload any) (*T, error) {
	return r.send(ctx, http.MethodPost, OrgPath(scope.OrganizationID, r.name), scope.Token, payload)
}

// Update PUT del payload sobre el id.
func (r *Resource[T]) Update(ctx context.Context, scope repository.Scope, id string, payload any) (*T, error) {
	return r.send(ctx, http.MethodPut, OrgPath(scope.OrganizationID, r.name, id), scope.Token, payload)
}

// Delete DELETE por id.
func (r *Resource[T]) Delete(ctx context.Context, scope repository.Scope, id string) error {
	_, err := r.c.do(ctx, call{
		method: http.MethodDelete,
		path:   OrgPath(scope.OrganizationID, r.name, id),
		token:  scope.Token,
	})
	return err
}

func (r *Resource[T]) send(ctx context.Context, method, path, token string, payload any) (*T, error) {
	raw, err := r.c.do(ctx, call{method: method, path: path, body: payload, token: token})
	if err != nil {
		return nil, err
	}
	if isEmptyBody(raw) {
		return nil, nil
	}
	out := new(T)
	if err := decodeInto(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func isEmptyBody(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}

var _ repository.Collection[struct{}] = (*Resource[struct{}])(nil)
