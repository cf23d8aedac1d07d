package miniapp

import (
	"context"
	"strings"
	"time"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// ErrGateMismatch - текст уведомления при неверном промокоде.
const ErrGateMismatch = "Промокод недействителен. Спросите код у администратора."

// CodeFetcher - источник действующего промокода.
type CodeFetcher interface {
	FetchPromoCode(ctx context.Context) (string, error)
}

// Gate - промо-гейт алкогольного раздела: Locked или Unlocked.
//
// Это мягкий барьер от случайного просмотра, не граница безопасности:
// сравнение и fallback видны любому, кто заглянет в клиент.
type Gate struct {
	fetcher CodeFetcher
	now     func() time.Time

	unlocked bool
}

// NewGate создаёт закрытый гейт. fetcher может быть nil: тогда валиден
// только fallback-код текущего месяца.
func NewGate(fetcher CodeFetcher) *Gate {
	return &Gate{fetcher: fetcher, now: time.Now}
}

// Unlocked возвращает текущее состояние.
func (g *Gate) Unlocked() bool {
	return g.unlocked
}

// Reset закрывает гейт. Вызывается при повторном входе на экран:
// разблокировка не персистится.
func (g *Gate) Reset() {
	g.unlocked = false
}

// Unlock сверяет введённый код с действующим и открывает гейт при
// совпадении (без учёта регистра). Действующий код - живой fetch с
// сервера; при недоступности - детерминированный fallback текущего
// месяца. Несовпадение оставляет Locked и возвращает CodeMismatch
// с фиксированным текстом; попытки независимы, без backoff.
func (g *Gate) Unlock(ctx context.Context, input string) error {
	valid := g.validCode(ctx)

	if strings.EqualFold(strings.TrimSpace(input), valid) {
		g.unlocked = true
		return nil
	}

	return domainerrors.CodeMismatchError{Message: ErrGateMismatch}
}

// validCode возвращает серверный код, либо fallback вида "MAR2026".
func (g *Gate) validCode(ctx context.Context) string {
	if g.fetcher != nil {
		if code, err := g.fetcher.FetchPromoCode(ctx); err == nil && code != "" {
			return code
		}
	}
	return MonthCode(g.now())
}

// MonthCode возвращает код месяца: трёхбуквенная английская
// аббревиатура заглавными плюс четырёхзначный год.
func MonthCode(t time.Time) string {
	return strings.ToUpper(t.Format("Jan2006"))
}
