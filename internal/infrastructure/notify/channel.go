// Package notify entrega los avisos de inventario fuera del ciclo de la petición.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/g-inventory/internal/domain"
)

// Notification mensaje ya renderizado. To es el destinatario de correo (ALERT_EMAIL).
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Channel canal de salida (correo, Telegram, log).
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// LogChannel registra el aviso en el log. Se usa cuando no hay SMTP configurado.
type LogChannel struct {
	log zerolog.Logger
}

func NewLogChannel(log zerolog.Logger) *LogChannel {
	return &LogChannel{log: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(_ context.Context, n Notification) error {
	if n.To == "" {
		return fmt.Errorf("log: destinatario vacío: %w", domain.ErrDelivery)
	}
	c.log.Info().Str("to", n.To).Str("subject", n.Subject).Msg(n.Body)
	return nil
}
