package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/pkg/config"
)

// botSender lo implementa *tgbotapi.BotAPI.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChannel envía los avisos a un chat fijo. No usa ALERT_EMAIL.
type TelegramChannel struct {
	bot    botSender
	chatID int64
}

// NewTelegramChannel valida el token contra la API de Telegram.
func NewTelegramChannel(cfg config.TelegramConfig) (*TelegramChannel, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramChannel{bot: bot, chatID: cfg.ChatID}, nil
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("telegram: %v: %w", err, domain.ErrDelivery)
	}
	msg := tgbotapi.NewMessage(c.chatID, n.Subject+"\n\n"+n.Body)
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: %v: %w", err, domain.ErrDelivery)
	}
	return nil
}
