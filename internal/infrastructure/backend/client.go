// Package backend es el adaptador HTTP hacia la API REST externa, dueña de
// todos los datos del tablero. Implementa los puertos de internal/domain/repository.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultLongTimeout   = 20 * time.Second
	defaultUploadTimeout = 60 * time.Second
	downloadURLTimeout   = 10 * time.Second

	maxResponseBytes = 8 << 20
)

// Config parámetros del cliente.
type Config struct {
	BaseURL       string
	LoginURL      string // vacío = BaseURL + /api/auth/login
	Timeout       time.Duration
	LongTimeout   time.Duration
	UploadTimeout time.Duration

	// MaxResponseBytes tope de lectura de una respuesta; 0 = 8 MB.
	MaxResponseBytes int64
}

// Client cliente HTTP compartido por todos los recursos.
// Usa net/http de la librería estándar; el timeout se impone por petición con context.
type Client struct {
	baseURL       string
	loginURL      string
	timeout       time.Duration
	longTimeout   time.Duration
	uploadTimeout time.Duration
	maxBody       int64
	httpClient    *http.Client
	log           *logger.Logger
}

// NewClient construye el cliente. httpClient nil usa uno propio.
func NewClient(cfg Config, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.Nop()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		baseURL:       base,
		loginURL:      cfg.LoginURL,
		timeout:       orDefault(cfg.Timeout, defaultTimeout),
		longTimeout:   orDefault(cfg.LongTimeout, defaultLongTimeout),
		uploadTimeout: orDefault(cfg.UploadTimeout, defaultUploadTimeout),
		maxBody:       cfg.MaxResponseBytes,
		httpClient:    httpClient,
		log:           log.Component("backend"),
	}
	if c.loginURL == "" {
		c.loginURL = base + "/api/auth/login"
	}
	if c.maxBody <= 0 {
		c.maxBody = maxResponseBytes
	}
	return c
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// OrgPath arma /api/organizations/{orgId}/{parts...} escapando cada segmento.
func OrgPath(orgID string, parts ...string) string {
	var b strings.Builder
	b.WriteString("/api/organizations/")
	b.WriteString(url.PathEscape(orgID))
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}

// call describe una petición. Si rawBody no es nil se envía tal cual con contentType.
type call struct {
	method      string
	path        string // relativo a baseURL, o absoluto si empieza con http
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
	token       string
	timeout     time.Duration
}

// do ejecuta la petición y devuelve el cuerpo. Status >= 400 y fallos de red se
// devuelven como *APIError.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	timeout := in.timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := in.path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + target
	}
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	var body io.Reader
	contentType := in.contentType
	switch {
	case in.rawBody != nil:
		body = in.rawBody
	case in.body != nil:
		payload, err := json.Marshal(in.body)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if in.token != "" {
		req.Header.Set("Authorization", "Bearer "+in.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", in.method).Str("path", in.path).Msg("llamada al backend fallida")
		return nil, &APIError{Method: in.method, Path: in.path, cause: err}
	}
	defer resp.Body.Close()

	// Un byte de más para distinguir "justo en el tope" de "truncada".
	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &APIError{Method: in.method, Path: in.path, Status: resp.StatusCode, cause: fmt.Errorf("leer respuesta: %w", err)}
	}
	if int64(len(raw)) > c.maxBody {
		c.log.Warn().Str("method", in.method).Str("path", in.path).Int64("limit", c.maxBody).Msg("respuesta del backend supera el tope")
		return nil, &APIError{Method: in.method, Path: in.path, Status: resp.StatusCode, cause: fmt.Errorf("más de %d bytes: %w", c.maxBody, ErrResponseTooLarge)}
	}

	c.log.Debug().
		Str("method", in.method).
		Str("path", in.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			Method:  in.method,
			Path:    in.path,
			Status:  resp.StatusCode,
			Message: extractMessage(raw),
		}
		c.log.Warn().Int("status", resp.StatusCode).Str("path", in.path).Str("message", apiErr.Message).Msg("backend respondió con error")
		return nil, apiErr
	}
	return raw, nil
}

func decodeInto(raw []byte, dest any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("backend: respuesta malformada: %w", err)
	}
	return nil
}
