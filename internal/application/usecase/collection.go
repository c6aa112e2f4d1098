package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// listPage pide una página al backend. Si el backend responde con array plano
// (sin paginar) la página se recorta aquí para que el cliente vea siempre el mismo sobre.
func listPage[T, R any](ctx context.Context, repo repository.Collection[T], s *session.Session, p dto.PageRequest, conv func(T) R) (*dto.ListResponse[R], error) {
	p.DefaultPage()
	page, err := repo.List(ctx, s.Scope(), repository.ListOptions{Page: p.Page, Size: p.Size})
	if err != nil {
		return nil, err
	}
	return toListResponse(page, p, conv), nil
}

func toListResponse[T, R any](page *repository.Page[T], p dto.PageRequest, conv func(T) R) *dto.ListResponse[R] {
	items := page.Items
	meta := dto.PageResponse{
		Page:          page.Number,
		Size:          p.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}
	if !page.Paged {
		total := len(items)
		start := total
		if p.Page <= total/p.Size {
			start = min(p.Page*p.Size, total)
		}
		end := min(start+p.Size, total)
		items = items[start:end]
		meta = dto.PageResponse{
			Page:          p.Page,
			Size:          p.Size,
			TotalElements: int64(total),
			TotalPages:    (total + p.Size - 1) / p.Size,
			First:         p.Page == 0,
			Last:          end >= total,
		}
	}

	out := &dto.ListResponse[R]{Items: make([]R, 0, len(items)), Page: meta}
	for _, it := range items {
		out.Items = append(out.Items, conv(it))
	}
	return out
}

func identity[T any](v T) T { return v }

// orSent devuelve lo que respondió el backend o, si respondió sin cuerpo, lo enviado.
func orSent[T any](got *T, sent T) T {
	if got == nil {
		return sent
	}
	return *got
}

// requireID valida el id de ruta.
func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return validation.Fail("id", "es requerido")
	}
	return nil
}
