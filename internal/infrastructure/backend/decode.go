package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Shape forma de una respuesta de listado.
// El backend devuelve arrays planos en unos recursos y el sobre paginado en otros;
// ambas son válidas. Cualquier otra cosa se trata como lista vacía.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeArray
	ShapePage
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapePage:
		return "page"
	default:
		return "unknown"
	}
}

type pageEnvelope struct {
	Content       json.RawMessage `json:"content"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Number        int             `json:"number"`
	First         *bool           `json:"first"`
	Last          *bool           `json:"last"`
}

func isArray(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// DetectShape clasifica el cuerpo sin decodificar los elementos.
func DetectShape(raw []byte) Shape {
	raw = bytes.TrimSpace(raw)
	if isArray(raw) {
		return ShapeArray
	}
	if len(raw) == 0 || raw[0] != '{' {
		return ShapeUnknown
	}
	var env pageEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ShapeUnknown
	}
	if isArray(env.Content) {
		return ShapePage
	}
	return ShapeUnknown
}

// DecodeList normaliza la respuesta a Page[T].
// Unknown produce una página vacía sin error; elementos que no encajan en T sí son error.
func DecodeList[T any](raw []byte) (*repository.Page[T], Shape, error) {
	shape := DetectShape(raw)
	switch shape {
	case ShapeArray:
		items := []T{}
		if err := json.Unmarshal(bytes.TrimSpace(raw), &items); err != nil {
			return nil, shape, fmt.Errorf("backend: decodificar lista: %w", err)
		}
		n := len(items)
		pages := 1
		if n == 0 {
			pages = 0
		}
		return &repository.Page[T]{
			Items:         items,
			TotalElements: int64(n),
			TotalPages:    pages,
			First:         true,
			Last:          true,
		}, shape, nil

	case ShapePage:
		var env pageEnvelope
		if err := json.Unmarshal(bytes.TrimSpace(raw), &env); err != nil {
			return nil, shape, fmt.Errorf("backend: decodificar página: %w", err)
		}
		items := []T{}
		if err := json.Unmarshal(env.Content, &items); err != nil {
			return nil, shape, fmt.Errorf("backend: decodificar content: %w", err)
		}
		p := &repository.Page[T]{
			Items:         items,
			TotalElements: env.TotalElements,
			TotalPages:    env.TotalPages,
			Number:        env.Number,
			Paged:         true,
		}
		if env.First != nil {
			p.First = *env.First
		} else {
			p.First = env.Number == 0
		}
		if env.Last != nil {
			p.Last = *env.Last
		} else {
			p.Last = env.Number >= env.TotalPages-1
		}
		return p, shape, nil

	default:
		return &repository.Page[T]{Items: []T{}, First: true, Last: true}, ShapeUnknown, nil
	}
}
