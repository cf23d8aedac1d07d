package order

import (
	"context"
	"fmt"

	"github.com/Maxxvall/BarskieHoromi/internal/application/dtos"
	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// DefaultRecentLimit - сколько заказов отдаём админ-панели по умолчанию.
const DefaultRecentLimit = 20

// MaxRecentLimit ограничивает размер выборки сверху.
const MaxRecentLimit = 100

// ListRecentOrdersUseCase - история заказов для админ-панели.
// Доступ по тому же контракту, что и остальные админские операции:
// числовой ID должен совпасть с настроенным администратором.
type ListRecentOrdersUseCase struct {
	archive ports.OrderArchive
	adminID int64 // 0 = админ не настроен, все запросы отклоняются
}

// NewListRecentOrdersUseCase создаёт новый use case.
func NewListRecentOrdersUseCase(archive ports.OrderArchive, adminID int64) *ListRecentOrdersUseCase {
	return &ListRecentOrdersUseCase{archive: archive, adminID: adminID}
}

// Execute возвращает последние заказы из архива.
func (uc *ListRecentOrdersUseCase) Execute(ctx context.Context, userID int64, limit int) ([]dtos.ArchivedOrderDTO, error) {
	if userID == 0 || uc.adminID == 0 || userID != uc.adminID {
		return nil, domainerrors.AuthorizationError{Message: "Unauthorized"}
	}

	if uc.archive == nil {
		return nil, domainerrors.ErrNotConfigured
	}

	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	orders, err := uc.archive.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]dtos.ArchivedOrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, dtos.FromArchived(o))
	}
	return result, nil
}
