// Package telegram - доставка заказов администратору через Bot API.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// sender - минимальный срез tgbotapi.BotAPI, нужный нотификатору.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier пересылает оформленный заказ в личный чат администратора.
type Notifier struct {
	bot    sender
	chatID int64
	logger *slog.Logger
}

// NewNotifier создаёт нотификатор: подключается к Bot API и проверяет токен.
func NewNotifier(token string, chatID int64, logger *slog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram bot api: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("✅ Telegram bot authorized", "username", bot.Self.UserName)

	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// Notify отправляет администратору HTML-сообщение с составом заказа.
// Одна отправка на один заказ; ретраев нет, ошибку разбирает вызывающий.
func (n *Notifier) Notify(ctx context.Context, order *entities.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, order.AdminMessage())
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Failed to send order to admin", "error", err, "chat_id", n.chatID)
		return domainerrors.NewTransportError("telegram send", 0, err)
	}

	n.logger.Info("Order relayed to admin",
		"chat_id", n.chatID,
		"total_price", order.TotalPrice,
		"items", len(order.Items),
	)
	return nil
}
