// Package order - use cases для отправки заказа и истории заказов.
package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Maxxvall/BarskieHoromi/internal/application/dtos"
	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// SubmitOrderUseCase - отправка заказа администратору.
//
// Сценарий:
// 1. Проверить, что заказ не пустой (400 без единого исходящего вызова)
// 2. Собрать доменный Order
// 3. Ретранслировать одно сообщение в чат администратора
// 4. Best-effort сохранить заказ в архив
//
// Ровно один исходящий запрос на вызов; без автоматических повторов.
type SubmitOrderUseCase struct {
	notifier ports.OrderNotifier
	archive  ports.OrderArchive // nil = архив не настроен
	logger   *slog.Logger
}

// NewSubmitOrderUseCase создаёт новый use case. Архив опционален.
func NewSubmitOrderUseCase(notifier ports.OrderNotifier, archive ports.OrderArchive, logger *slog.Logger) *SubmitOrderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmitOrderUseCase{
		notifier: notifier,
		archive:  archive,
		logger:   logger,
	}
}

// Execute выполняет отправку заказа.
func (uc *SubmitOrderUseCase) Execute(ctx context.Context, cmd dtos.SendOrderCommand) error {
	if len(cmd.Items) == 0 {
		return domainerrors.ErrEmptyCart
	}

	// Relay недоступен когда не заданы TELEGRAM_BOT_TOKEN / ADMIN_CHAT_ID.
	// Клиенту уходит непрозрачный 500, детали остаются в серверном логе.
	if uc.notifier == nil {
		uc.logger.Error("order relay is not configured")
		return domainerrors.ErrNotConfigured
	}

	ord := cmd.ToOrder()

	if err := uc.notifier.Notify(ctx, ord); err != nil {
		return fmt.Errorf("failed to relay order: %w", err)
	}

	// Архив не участвует в контракте отправки: сбой записи логируется,
	// но заказ уже у администратора и считается успешным.
	if uc.archive != nil {
		if err := uc.archive.Save(ctx, ord); err != nil {
			uc.logger.Warn("failed to archive order",
				slog.String("error", err.Error()),
				slog.Int("total_price", ord.TotalPrice),
			)
		}
	}

	uc.logger.Info("order relayed",
		slog.String("meal_type", string(ord.MealType)),
		slog.String("order_date", string(ord.OrderDate)),
		slog.Int("total_price", ord.TotalPrice),
		slog.Int("items", len(ord.Items)),
	)

	return nil
}
