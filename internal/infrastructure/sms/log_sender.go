package sms

import (
	"context"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

var _ ports.SMSSender = (*LogSender)(nil)

// LogSender solo registra el mensaje. Se usa cuando no hay pasarela configurada.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el adaptador.
func NewLogSender(log *logger.Logger) *LogSender {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSender{log: log.Component("sms")}
}

// Send nunca falla.
func (s *LogSender) Send(_ context.Context, msg ports.SMSMessage) error {
	s.log.Warn().
		Str("to", strings.Join(msg.To, ",")).
		Str("body", msg.Body).
		Msg("SMS no enviado: pasarela no configurada")
	return nil
}
