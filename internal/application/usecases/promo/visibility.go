package promo

import (
	"context"
	"fmt"

	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// GetVisibilityUseCase - чтение флага видимости секретного раздела.
type GetVisibilityUseCase struct {
	store ports.PromoStore
}

// NewGetVisibilityUseCase создаёт новый use case.
func NewGetVisibilityUseCase(store ports.PromoStore) *GetVisibilityUseCase {
	return &GetVisibilityUseCase{store: store}
}

// Execute возвращает текущее значение флага (по умолчанию true).
func (uc *GetVisibilityUseCase) Execute(ctx context.Context) (bool, error) {
	visible, err := uc.store.GetVisibility(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read visibility: %w", err)
	}
	return visible, nil
}

// ToggleVisibilityUseCase - админское переключение флага.
// Инверсия выполняется в store атомарно: два параллельных переключения
// дают два реальных переключения, а не потерянное обновление.
type ToggleVisibilityUseCase struct {
	store   ports.PromoStore
	adminID int64
}

// NewToggleVisibilityUseCase создаёт новый use case.
func NewToggleVisibilityUseCase(store ports.PromoStore, adminID int64) *ToggleVisibilityUseCase {
	return &ToggleVisibilityUseCase{store: store, adminID: adminID}
}

// Execute инвертирует флаг и возвращает новое значение.
func (uc *ToggleVisibilityUseCase) Execute(ctx context.Context, userID int64) (bool, error) {
	if userID == 0 || uc.adminID == 0 || userID != uc.adminID {
		return false, domainerrors.AuthorizationError{Message: "Unauthorized"}
	}

	visible, err := uc.store.ToggleVisibility(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to toggle visibility: %w", err)
	}
	return visible, nil
}
