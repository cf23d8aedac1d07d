// Package ports определяет интерфейсы между application-слоем и
// инфраструктурой (Dependency Inversion: application зависит от абстракций,
// реализации живут в internal/infrastructure).
package ports

import (
	"context"

	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
)

// PromoStore owns the promo code and the secret-section visibility flag.
// The state lives outside the process (Redis in production) so it survives
// restarts and scale-out; the in-memory implementation exists for tests and
// for running without Redis.
type PromoStore interface {
	// GetCode возвращает текущий промокод или "" если он ещё не задан.
	GetCode(ctx context.Context) (string, error)

	// EnsureCode устанавливает candidate только если кода ещё нет и
	// возвращает победивший код. Атомарно: параллельные первые читатели
	// получают один и тот же код.
	EnsureCode(ctx context.Context, candidate string) (string, error)

	// SetCode безусловно заменяет промокод.
	SetCode(ctx context.Context, code string) error

	// GetVisibility возвращает флаг видимости секретного раздела
	// (по умолчанию true, пока его никто не переключал).
	GetVisibility(ctx context.Context) (bool, error)

	// ToggleVisibility атомарно инвертирует флаг и возвращает новое значение.
	ToggleVisibility(ctx context.Context) (bool, error)

	// Ping проверяет доступность хранилища (для readiness probe).
	Ping(ctx context.Context) error
}

// OrderNotifier relays a composed order to the admin chat. Exactly one
// message per call; the implementation decides the transport (Bot API).
type OrderNotifier interface {
	Notify(ctx context.Context, order *entities.Order) error
}

// OrderArchive хранит историю отправленных заказов для админ-панели.
// Архивирование best-effort: сбой записи не должен валить заказ.
type OrderArchive interface {
	Save(ctx context.Context, order *entities.Order) error
	ListRecent(ctx context.Context, limit int) ([]entities.ArchivedOrder, error)
	Ping(ctx context.Context) error
}
