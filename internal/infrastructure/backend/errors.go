package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
)

// ErrResponseTooLarge el backend respondió más de lo que el cliente acepta leer.
var ErrResponseTooLarge = errors.New("respuesta del backend demasiado grande")

// APIError fallo de una llamada al backend. Status 0 = no hubo respuesta (red, timeout).
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string // mensaje del backend, si lo envió
	cause   error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend: %s %s: %v", e.Method, e.Path, e.cause)
	}
	if e.Message != "" {
		return fmt.Sprintf("backend: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

// Unwrap expone el error de dominio según el status y la causa de red si la hay.
func (e *APIError) Unwrap() []error {
	var errs []error
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// PublicMessage mensaje apto para el usuario final; vacío si el backend no envió ninguno.
func (e *APIError) PublicMessage() string { return e.Message }

// StatusCode status HTTP del backend (0 sin respuesta).
func (e *APIError) StatusCode() int { return e.Status }

func (e *APIError) sentinel() error {
	switch {
	case e.Status == 0, errors.Is(e.cause, ErrResponseTooLarge):
		return domain.ErrBackendUnavailable
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusRequestEntityTooLarge:
		return domain.ErrFileTooLarge
	case e.Status >= http.StatusInternalServerError:
		return domain.ErrBackendUnavailable
	default:
		return nil
	}
}

// extractMessage toma "message" o "error" de un cuerpo JSON; texto plano corto se usa tal cual.
func extractMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "{") {
		var body struct {
			Message any `json:"message"`
			Error   any `json:"error"`
		}
		if err := json.Unmarshal([]byte(trimmed), &body); err == nil {
			if s, ok := body.Message.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
			if s, ok := body.Error.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		return ""
	}
	if strings.HasPrefix(trimmed, "<") || len(trimmed) > 200 {
		return ""
	}
	return trimmed
}
