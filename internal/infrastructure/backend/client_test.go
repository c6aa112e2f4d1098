package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testScope = repository.Scope{OrganizationID: "org-1", Token: "backend-token"}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, srv.Client(), nil)
	return c, srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recursos genéricos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrgPath_EscapaSegmentos(t *testing.T) {
	assert.Equal(t, "/api/organizations/org%2F1/products", OrgPath("org/1", "products"))
	assert.Equal(t, "/api/organizations/a%20b/bank-deposits/7/download-url", OrgPath("a b", "bank-deposits", "7", "download-url"))
	assert.Equal(t, "/api/organizations/x/products", OrgPath("x", "", "products"))
}

func TestResource_List_ArrayConCabeceras(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/organizations/org%2F1/products", r.URL.EscapedPath())
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err, "cada petición lleva X-Request-ID")
		writeJSON(w, http.StatusOK, `[{"id":1,"productName":"Diesel","tankCapacity":10000,"currentLevel":1500,"status":true}]`)
	})

	repo := NewProductRepository(c)
	page, err := repo.List(context.Background(), repository.Scope{OrganizationID: "org/1", Token: "backend-token"}, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Diesel", page.Items[0].ProductName)
	assert.Equal(t, 15, page.Items[0].FillPercent())
}

func TestResource_List_SobrePaginadoYQuery(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		writeJSON(w, http.StatusOK, `{"content":[{"id":"d1","bankName":"SBI","amount":1500.5,"depositDate":"2025-03-01"}],"totalElements":1,"totalPages":1,"number":0,"first":true,"last":true}`)
	})

	repo := NewDepositRepository(c)
	page, err := repo.List(context.Background(), testScope, repository.ListOptions{Page: 0, Size: 50})
	require.NoError(t, err)
	assert.True(t, page.Paged)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.ID("d1"), page.Items[0].ID)
	assert.Equal(t, "2025-03-01", page.Items[0].DepositDate.String())
}

func TestResource_List_RespuestaRara_ListaVacia(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"message":"ok"}`)
	})
	page, err := NewEmployeeRepository(c).List(context.Background(), testScope, repository.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestResource_CreateUpdateDelete(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Office", body["category"])
			writeJSON(w, http.StatusOK, `{"id":9,"category":"Office","amount":120,"status":"pending"}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	repo := NewExpenseRepository(c)
	ctx := context.Background()

	created, err := repo.Create(ctx, testScope, map[string]any{"category": "Office"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.ID("9"), created.ID)

	_, err = repo.Update(ctx, testScope, "9", map[string]any{"category": "Office"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, testScope, "9"))

	assert.Equal(t, []string{
		"POST /api/organizations/org-1/expenses",
		"PUT /api/organizations/org-1/expenses/9",
		"DELETE /api/organizations/org-1/expenses/9",
	}, calls)
}

func TestResource_Get_CuerpoVacio_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	_, err := NewEmployeeRepository(c).Get(context.Background(), testScope, "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErroresDelBackend(t *testing.T) {
	cases := []struct {
		status  int
		body    string
		target  error
		message string
	}{
		{http.StatusNotFound, `{"message":"Product not found"}`, domain.ErrNotFound, "Product not found"},
		{http.StatusBadRequest, `{"error":"Validation Error","message":"amount must be positive"}`, domain.ErrInvalidInput, "amount must be positive"},
		{http.StatusUnauthorized, `{"error":"Unauthorized"}`, domain.ErrUnauthorized, "Unauthorized"},
		{http.StatusForbidden, ``, domain.ErrForbidden, ""},
		{http.StatusInternalServerError, `<html>boom</html>`, domain.ErrBackendUnavailable, ""},
		{http.StatusConflict, `ya existe`, domain.ErrConflict, "ya existe"},
	}
	for _, tc := range cases {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tc.status, tc.body)
		})
		_, err := NewProductRepository(c).List(context.Background(), testScope, repository.ListOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, tc.target, "status %d", tc.status)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, tc.status, apiErr.StatusCode())
		assert.Equal(t, tc.message, apiErr.PublicMessage(), "status %d", tc.status)
	}
}

func TestClient_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url}, nil, nil)
	_, err := NewProductRepository(c).List(context.Background(), testScope, repository.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_RespuestaDemasiadoGrande(t *testing.T) {
	body := `[{"id":1,"productName":"Diesel"},{"id":2,"productName":"Petrol"}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL, MaxResponseBytes: int64(len(body) - 1)}, srv.Client(), nil)
	_, err := NewProductRepository(c).List(context.Background(), testScope, repository.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResponseTooLarge)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	// Justo en el tope se lee completa.
	c = NewClient(Config{BaseURL: srv.URL, MaxResponseBytes: int64(len(body))}, srv.Client(), nil)
	page, err := NewProductRepository(c).List(context.Background(), testScope, repository.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, srv.Client(), nil)
	_, err := NewEmployeeRepository(c).List(context.Background(), testScope, repository.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sub-rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestDeposits_UploadReceipt(t *testing.T) {
	for _, resp := range []string{`{"fileUrl":"https://cdn.example.com/r/1.pdf"}`, `"https://cdn.example.com/r/1.pdf"`} {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/organizations/org-1/bank-deposits/upload", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, hdr, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "recibo.pdf", hdr.Filename)
			assert.Equal(t, "%PDF-1.4", string(data))
			writeJSON(w, http.StatusOK, resp)
		})
		got, err := NewDepositRepository(c).UploadReceipt(context.Background(), testScope, "/tmp/recibo.pdf", strings.NewReader("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/r/1.pdf", got)
	}
}

func TestDeposits_DownloadURL(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/organizations/org-1/bank-deposits/d1/download-url", r.URL.Path)
		assert.Equal(t, "60", r.URL.Query().Get("durationSeconds"))
		writeJSON(w, http.StatusOK, `{"url":"https://storage.googleapis.com/b/x.pdf?X-Goog-SignedHeaders=host"}`)
	})
	got, err := NewDepositRepository(c).DownloadURL(context.Background(), testScope, "d1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/b/x.pdf?X-Goog-SignedHeaders=host", got)
}

func TestDeposits_DownloadURL_SinURL_Error(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	_, err := NewDepositRepository(c).DownloadURL(context.Background(), testScope, "d1", 0)
	assert.Error(t, err)
}

func TestSales_ListByDate(t *testing.T) {
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 10, 31, 23, 59, 59, 0, time.Local)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/organizations/org-1/sale-history/by-date", r.URL.Path)
		assert.Equal(t, "2025-10-01T00:00:00", r.URL.Query().Get("from"))
		assert.Equal(t, "2025-10-31T23:59:59", r.URL.Query().Get("to"))
		writeJSON(w, http.StatusOK, `[{"id":1,"productName":"Diesel","salesInRupees":600,"dateTime":"2025-10-02T09:00:00"}]`)
	})
	sales, err := NewSaleRepository(c).ListByDate(context.Background(), testScope, from, to)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "600", sales[0].SalesInRupees.String())
}

func TestSubrutas_PorEmpleadoYProducto(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx := context.Background()

	_, err := NewAttendanceRepository(c).ListByEmployee(ctx, testScope, "E7")
	require.NoError(t, err)
	_, err = NewTaskRepository(c).ListByEmployee(ctx, testScope, "E7", "pending")
	require.NoError(t, err)
	_, err = NewDutyRepository(c).ListByEmployee(ctx, testScope, "E7")
	require.NoError(t, err)
	_, err = NewInventoryLogRepository(c).ListByProduct(ctx, testScope, "p1", time.Time{}, time.Time{})
	require.NoError(t, err)
	_, err = NewDocumentRepository(c).LifecycleStatus(ctx, testScope)
	require.NoError(t, err)
	_, err = NewCustomerRepository(c).History(ctx, testScope, repository.ListOptions{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/organizations/org-1/attendance/employee/E7?",
		"/api/organizations/org-1/tasks/employee/E7?status=pending",
		"/api/organizations/org-1/employee-duties/employee/E7?",
		"/api/organizations/org-1/inventory-logs/by-product?productId=p1",
		"/api/organizations/org-1/documents/lifecycle-status?",
		"/api/organizations/org-1/customers/history/all?page=1&size=10",
	}, paths)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthGateway_Login(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ravi", body.Username)
		assert.Equal(t, "secret", body.Password)
		writeJSON(w, http.StatusOK, `{"id":12,"username":"ravi","role":"MANAGER","organizationId":"org-1","empId":"E7","token":"tok"}`)
	})
	res, err := NewAuthGateway(c).Login(context.Background(), "ravi", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "12", res.User.ID)
	assert.Equal(t, "MANAGER", res.User.Role)
	assert.Equal(t, "org-1", res.User.OrganizationID)
	assert.Equal(t, "E7", res.User.EmpID)
}

func TestAuthGateway_Login_CredencialesInvalidas(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Bad credentials"}`)
	})
	_, err := NewAuthGateway(c).Login(context.Background(), "ravi", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthGateway_Login_SinToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":1,"username":"ravi"}`)
	})
	_, err := NewAuthGateway(c).Login(context.Background(), "ravi", "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
