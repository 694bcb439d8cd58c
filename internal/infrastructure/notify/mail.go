package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/pkg/config"
)

// dialer lo implementa *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailChannel envía los avisos por SMTP.
type MailChannel struct {
	dialer dialer
	from   string
}

// NewMailChannel construye el canal SMTP desde la configuración.
func NewMailChannel(cfg config.MailConfig) *MailChannel {
	return &MailChannel{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (c *MailChannel) Name() string { return "email" }

// Send arma el mensaje en texto plano. gomail no acepta context: si ctx vence antes, se devuelve su error
// y el envío en curso termina por su cuenta.
func (c *MailChannel) Send(ctx context.Context, n Notification) error {
	if n.To == "" {
		return fmt.Errorf("email: ALERT_EMAIL no configurado: %w", domain.ErrDelivery)
	}
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", n.Body)

	done := make(chan error, 1)
	go func() { done <- c.dialer.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("email: %v: %w", err, domain.ErrDelivery)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email: %v: %w", ctx.Err(), domain.ErrDelivery)
	}
}
