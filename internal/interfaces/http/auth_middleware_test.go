package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	apphttp "github.com/jhoicas/finflux-dashboard/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/finflux-dashboard/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "12"
	testOrgID     = "org-1"
	testIssuer    = "finflux-dashboard-test"
	testExpMin    = 60
)

// fakeSessions resuelve sesiones por ID sin reloj real.
type fakeSessions struct {
	live    map[string]*session.Session
	expired map[string]bool
}

func (f *fakeSessions) Get(id string) (*session.Session, error) {
	if f.expired[id] {
		return nil, domain.ErrSessionExpired
	}
	if s, ok := f.live[id]; ok {
		return s, nil
	}
	return nil, domain.ErrUnauthorized
}

func newFakeSessions() *fakeSessions {
	f := &fakeSessions{live: map[string]*session.Session{}, expired: map[string]bool{"old": true}}
	for _, role := range []string{entity.RoleOwner, entity.RoleManager, entity.RoleEmployee} {
		u := entity.User{ID: testUserID, Username: role, Role: role, OrganizationID: testOrgID}
		f.live[role] = session.New(role, u, "backend-token", 20, time.Now())
	}
	return f
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - SessionMiddleware para resolver la sesión
//   - RequireRole para autorizar el acceso
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.SessionMiddleware(newFakeSessions()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"org":     apphttp.GetOrganizationID(c),
				"session": apphttp.GetSession(c).ID,
			})
		},
	)
	return app
}

// tokenFor genera un JWT cuyo SessionID coincide con el rol (ver newFakeSessions).
func tokenFor(t *testing.T, role, sessionID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Identity{
		UserID:         testUserID,
		OrganizationID: testOrgID,
		Role:           role,
		SessionID:      sessionID,
	})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	tok, err := pkgjwt.Generate("otro-secreto", testIssuer, testExpMin, pkgjwt.Identity{Role: entity.RoleOwner, SessionID: "owner"})
	require.NoError(t, err)

	status, body := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, -1, pkgjwt.Identity{Role: entity.RoleOwner, SessionID: "owner"})
	require.NoError(t, err)

	status, _ := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_CargaSesion(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, tokenFor(t, entity.RoleOwner, entity.RoleOwner))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "owner", body["session"])
	assert.Equal(t, testOrgID, body["org"])
}

func TestSessionMiddleware_SesionExpirada(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, tokenFor(t, entity.RoleOwner, "old"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
}

func TestSessionMiddleware_SesionDesconocida(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, tokenFor(t, entity.RoleOwner, "nope"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestSessionMiddleware_TokenSinSesion(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, tokenFor(t, entity.RoleOwner, ""))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		role    string
		status  int
		code    string
	}{
		{"dueño en grupo de gestión", []string{entity.RoleOwner, entity.RoleManager}, entity.RoleOwner, fiber.StatusOK, ""},
		{"gerente en grupo de gestión", []string{entity.RoleOwner, entity.RoleManager}, entity.RoleManager, fiber.StatusOK, ""},
		{"empleado en grupo de gestión", []string{entity.RoleOwner, entity.RoleManager}, entity.RoleEmployee, fiber.StatusForbidden, "FORBIDDEN"},
		{"gerente en vista de empleado", []string{entity.RoleEmployee}, entity.RoleManager, fiber.StatusForbidden, "FORBIDDEN"},
		{"rol en mayúsculas", []string{"OWNER"}, entity.RoleOwner, fiber.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(tc.allowed...)
			status, body := doRequest(t, app, tokenFor(t, tc.role, tc.role))
			assert.Equal(t, tc.status, status)
			if tc.code != "" {
				assert.Equal(t, tc.code, body["code"])
			} else {
				assert.Equal(t, tc.role, body["role"])
			}
		})
	}
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp(entity.RoleOwner)
	status, body := doRequest(t, app, tokenFor(t, "", entity.RoleOwner))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_ROLE", body["code"])
}
