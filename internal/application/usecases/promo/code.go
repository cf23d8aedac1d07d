// Package promo - use cases для промокода и видимости секретного раздела.
//
// Состояние живёт во внешнем PromoStore, а не в переменной процесса:
// перезапуск инстанса или второй инстанс за балансировщиком видят тот же
// код и тот же флаг.
package promo

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// codeCharset - алфавит промокода: латинские заглавные и цифры.
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength - длина генерируемого промокода.
const CodeLength = 6

// GenerateCode возвращает случайный 6-символьный код из [A-Z0-9].
func GenerateCode() string {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок;
		// fallback оставлен на случай экзотического окружения.
		for i := range buf {
			buf[i] = codeCharset[i%len(codeCharset)]
		}
		return string(buf)
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(buf)
}

// GetCodeUseCase - получение действующего промокода.
// Лениво генерирует код при первом обращении: EnsureCode в store атомарен,
// поэтому параллельные первые читатели согласуются на одном коде.
type GetCodeUseCase struct {
	store ports.PromoStore
}

// NewGetCodeUseCase создаёт новый use case.
func NewGetCodeUseCase(store ports.PromoStore) *GetCodeUseCase {
	return &GetCodeUseCase{store: store}
}

// Execute возвращает текущий промокод, при необходимости генерируя новый.
func (uc *GetCodeUseCase) Execute(ctx context.Context) (string, error) {
	code, err := uc.store.GetCode(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read promo code: %w", err)
	}
	if code != "" {
		return code, nil
	}

	code, err = uc.store.EnsureCode(ctx, GenerateCode())
	if err != nil {
		return "", fmt.Errorf("failed to initialize promo code: %w", err)
	}
	return code, nil
}

// RegenerateCodeUseCase - админская замена промокода.
type RegenerateCodeUseCase struct {
	store   ports.PromoStore
	adminID int64
}

// NewRegenerateCodeUseCase создаёт новый use case.
func NewRegenerateCodeUseCase(store ports.PromoStore, adminID int64) *RegenerateCodeUseCase {
	return &RegenerateCodeUseCase{store: store, adminID: adminID}
}

// Execute генерирует и сохраняет новый промокод. Доступно только
// настроенному администратору; всем остальным - AuthorizationError.
func (uc *RegenerateCodeUseCase) Execute(ctx context.Context, userID int64) (string, error) {
	if userID == 0 || uc.adminID == 0 || userID != uc.adminID {
		return "", domainerrors.AuthorizationError{Message: "Unauthorized"}
	}

	code := GenerateCode()
	if err := uc.store.SetCode(ctx, code); err != nil {
		return "", fmt.Errorf("failed to store promo code: %w", err)
	}
	return code, nil
}
