package ports

import "context"

// SMSMessage mensaje de texto para uno o más destinatarios.
type SMSMessage struct {
	To   []string
	Body string
}

// SMSSender puerto de salida para la pasarela de SMS.
// Cualquier adaptador (HTTP, solo log, mock) debe implementar esta interfaz.
// Un error significa que el mensaje no se entregó; el llamador no reintenta.
type SMSSender interface {
	Send(ctx context.Context, msg SMSMessage) error
}
