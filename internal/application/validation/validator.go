// Package validation valida las entradas antes de cualquier llamada al backend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// MaxUploadBytes tamaño máximo de un comprobante o documento.
const MaxUploadBytes = 10 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nombres de campo según el tag json en los errores.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	// decimal.Decimal se valida como float64 (gte, gt, lte).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// FieldError error de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error errores de validación de una entrada. Se compara con domain.ErrInvalidInput.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// PublicMessage mensaje para el usuario final.
func (e *Error) PublicMessage() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Fail construye un *Error de un único campo.
func Fail(field, message string) error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// Struct valida s según sus tags validate.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validación: %w", err)
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "no es un email válido"
	case "url":
		return "no es una URL válida"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "gte":
		return "debe ser mayor o igual a " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "lte":
		return "debe ser menor o igual a " + e.Param()
	case "datetime":
		return "debe tener formato " + e.Param()
	default:
		return "valor inválido"
	}
}

// ParseDate interpreta YYYY-MM-DD en hora local. Vacío devuelve fecha cero.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(entity.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, Fail(field, "debe tener formato "+entity.DateLayout)
	}
	return t, nil
}

// DateOrder exige from <= to cuando ambas fechas están presentes.
func DateOrder(fromField string, from time.Time, toField string, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	if from.After(to) {
		return Fail(toField, "no puede ser anterior a "+fromField)
	}
	return nil
}

// LevelWithinCapacity exige 0 <= level <= capacity.
func LevelWithinCapacity(level, capacity decimal.Decimal) error {
	if level.IsNegative() {
		return Fail("current_level", "debe ser mayor o igual a 0")
	}
	if capacity.IsPositive() && level.GreaterThan(capacity) {
		return Fail("current_level", "no puede superar la capacidad del tanque")
	}
	return nil
}

// FileSize exige 0 < size <= MaxUploadBytes.
func FileSize(size int64) error {
	if size <= 0 {
		return Fail("file", "es requerido")
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("archivo de %d bytes supera 10 MB: %w", size, domain.ErrFileTooLarge)
	}
	return nil
}
