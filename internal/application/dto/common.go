package dto

// PageRequest paginación para listados. El backend numera páginas desde 0.
type PageRequest struct {
	Page int `query:"page" validate:"min=0"`
	Size int `query:"size" validate:"min=0,max=200"`
}

// MaxPage página más alta que se acepta; por encima se recorta.
const MaxPage = 1_000_000

// DefaultPage aplica valores por defecto si Page/Size son inválidos.
func (p *PageRequest) DefaultPage() {
	if p.Size <= 0 {
		p.Size = 50
	}
	if p.Size > 200 {
		p.Size = 200
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// ListResponse listado genérico con metadatos de página.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
