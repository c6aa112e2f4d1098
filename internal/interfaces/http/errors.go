package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
)

// publicMessager lo implementan los errores con mensaje apto para el usuario
// (validación y respuestas del backend).
type publicMessager interface {
	PublicMessage() string
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // fijo; vacío = se usa el mensaje de la operación
}

// El orden importa: SESSION_EXPIRED antes que UNAUTHORIZED.
var errorMappings = []errorMapping{
	{domain.ErrSessionExpired, fiber.StatusUnauthorized, "SESSION_EXPIRED", "sesión expirada por inactividad, vuelva a iniciar sesión"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "el archivo supera 10 MB"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas o sesión no válida"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado al recurso"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", ""},
	{domain.ErrBackendUnavailable, fiber.StatusBadGateway, "BACKEND_ERROR", ""},
}

// respondError traduce err a dto.ErrorResponse. El mensaje es el del backend o
// de validación si existe; si no, el fijo del código o el de la operación.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	status, code, message := fiber.StatusInternalServerError, "INTERNAL", ""
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			status, code, message = m.status, m.code, m.message
			break
		}
	}

	var pm publicMessager
	if errors.As(err, &pm) && pm.PublicMessage() != "" {
		message = pm.PublicMessage()
	}
	if message == "" {
		message = fallback
	}
	if message == "" {
		message = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// currentSession sesión del request; sin sesión la ruta no pasó por SessionMiddleware.
func currentSession(c *fiber.Ctx) (*session.Session, error) {
	s := GetSession(c)
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
}

// pageRequest lee page/size del query string.
func pageRequest(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return p, err
	}
	return p, nil
}
