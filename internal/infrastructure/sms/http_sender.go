// Package sms contiene los adaptadores del puerto ports.SMSSender.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

// Verificar en tiempo de compilación que HTTPSender implementa SMSSender.
var _ ports.SMSSender = (*HTTPSender)(nil)

const defaultSendTimeout = 10 * time.Second

// Config parámetros de la pasarela.
type Config struct {
	GatewayURL string
	APIKey     string
	SenderID   string
	Timeout    time.Duration
}

// HTTPSender envía SMS con un POST JSON a una pasarela genérica.
// Usa net/http de la librería estándar; la pasarela no tiene SDK.
type HTTPSender struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
}

// NewHTTPSender construye el adaptador. httpClient nil usa uno con el timeout configurado.
func NewHTTPSender(cfg Config, httpClient *http.Client, log *logger.Logger) *HTTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &HTTPSender{cfg: cfg, httpClient: httpClient, log: log.Component("sms")}
}

type gatewayRequest struct {
	Sender  string   `json:"sender"`
	To      []string `json:"to"`
	Message string   `json:"message"`
}

type gatewayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Send entrega el mensaje. Sin destinatarios o sin cuerpo es un error.
func (s *HTTPSender) Send(ctx context.Context, msg ports.SMSMessage) error {
	if s.cfg.GatewayURL == "" {
		return fmt.Errorf("sms: SMS_GATEWAY_URL no configurado")
	}
	to := cleanRecipients(msg.To)
	if len(to) == 0 {
		return fmt.Errorf("sms: sin destinatarios")
	}
	if strings.TrimSpace(msg.Body) == "" {
		return fmt.Errorf("sms: mensaje vacío")
	}

	body, err := json.Marshal(gatewayRequest{Sender: s.cfg.SenderID, To: to, Message: msg.Body})
	if err != nil {
		return fmt.Errorf("sms: serializar request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("sms: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("sms: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return fmt.Errorf("sms: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gw gatewayResponse
		if jsonErr := json.Unmarshal(raw, &gw); jsonErr == nil {
			if m := firstNonEmpty(gw.Error, gw.Message); m != "" {
				return fmt.Errorf("sms: pasarela HTTP %d: %s", resp.StatusCode, m)
			}
		}
		return fmt.Errorf("sms: pasarela HTTP %d", resp.StatusCode)
	}

	s.log.Info().Int("recipients", len(to)).Msg("SMS enviado")
	return nil
}

func cleanRecipients(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
