// Package miniapp - клиентское ядро мини-приложения: мост к хосту,
// навигация, корзина с отправкой заказа, промо-гейт и API клиент.
//
// Хост (Telegram WebView) - опциональная способность: вне хоста все
// обращения к мосту деградируют в определённый no-op/fallback, никогда
// не падают.
package miniapp

import (
	"strings"
	"sync"
	"time"
)

// ColorScheme - светлая или тёмная тема хоста.
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// ThemeParams - именованные цвета темы хоста.
type ThemeParams struct {
	BGColor         string
	TextColor       string
	HintColor       string
	LinkColor       string
	ButtonColor     string
	ButtonTextColor string
}

// WebAppUser - identity пользователя из хоста.
type WebAppUser struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// HapticStyle - сила тактильного отклика.
type HapticStyle string

const (
	HapticLight  HapticStyle = "light"
	HapticMedium HapticStyle = "medium"
	HapticHeavy  HapticStyle = "heavy"
)

// HapticNotification - тип уведомительного отклика.
type HapticNotification string

const (
	HapticSuccess HapticNotification = "success"
	HapticError   HapticNotification = "error"
	HapticWarning HapticNotification = "warning"
)

// Bridge - поверхность хоста, которую потребляет приложение.
type Bridge interface {
	// Theme возвращает текущие цвета темы.
	Theme() ThemeParams
	// Scheme возвращает light|dark.
	Scheme() ColorScheme
	// ShowBackButton показывает кнопку "Назад" и вешает обработчик.
	ShowBackButton(handler func())
	// HideBackButton прячет кнопку "Назад".
	HideBackButton()
	// HapticImpact - тактильный отклик заданной силы.
	HapticImpact(style HapticStyle)
	// HapticNotify - уведомительный отклик.
	HapticNotify(kind HapticNotification)
	// User возвращает identity пользователя, если хост её отдал.
	User() (*WebAppUser, bool)
	// OpenLink открывает внешнюю ссылку средствами хоста.
	OpenLink(url string)
}

// ============================================
// Nil-safe helpers
// ============================================

// BridgeUser возвращает identity через nil-safe обращение к мосту.
func BridgeUser(b Bridge) (*WebAppUser, bool) {
	if b == nil {
		return nil, false
	}
	return b.User()
}

// Impact - nil-safe тактильный отклик.
func Impact(b Bridge, style HapticStyle) {
	if b != nil {
		b.HapticImpact(style)
	}
}

// Notify - nil-safe уведомительный отклик.
func Notify(b Bridge, kind HapticNotification) {
	if b != nil {
		b.HapticNotify(kind)
	}
}

// FormatUserName форматирует имя гостя для заказа.
// Без identity (или с пустым именем) возвращает "Гость".
func FormatUserName(u *WebAppUser) string {
	if u == nil {
		return "Гость"
	}

	parts := make([]string, 0, 2)
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	name := strings.Join(parts, " ")

	if u.Username != "" {
		return name + " (@" + u.Username + ")"
	}
	if name == "" {
		return "Гость"
	}
	return name
}

// ============================================
// Theme observation
// ============================================

// ThemeSnapshot - цвета и схема на момент наблюдения.
type ThemeSnapshot struct {
	Params ThemeParams
	Scheme ColorScheme
}

// ThemeObserver - observable-контракт на тему хоста: подписчик получает
// снимок при каждом изменении. Реализация сама выбирает push или poll.
type ThemeObserver interface {
	// Subscribe регистрирует подписчика и возвращает функцию отписки.
	Subscribe(fn func(ThemeSnapshot)) (unsubscribe func())
	// Close останавливает наблюдение и снимает всех подписчиков.
	Close()
}

// DefaultPollInterval - интервал опроса темы хоста.
const DefaultPollInterval = time.Second

// PollingThemeObserver опрашивает мост с фиксированным интервалом и
// уведомляет подписчиков только при реальном изменении снимка.
type PollingThemeObserver struct {
	bridge   Bridge
	interval time.Duration

	mu     sync.Mutex
	subs   map[int]func(ThemeSnapshot)
	nextID int
	last   ThemeSnapshot
	stop   chan struct{}
	once   sync.Once
}

// NewPollingThemeObserver создаёт наблюдатель и запускает опрос.
// С nil-мостом наблюдатель инертен: подписчики никогда не вызываются.
func NewPollingThemeObserver(bridge Bridge, interval time.Duration) *PollingThemeObserver {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	o := &PollingThemeObserver{
		bridge:   bridge,
		interval: interval,
		subs:     make(map[int]func(ThemeSnapshot)),
		stop:     make(chan struct{}),
	}

	if bridge != nil {
		o.last = ThemeSnapshot{Params: bridge.Theme(), Scheme: bridge.Scheme()}
		go o.poll()
	}

	return o
}

// Subscribe регистрирует подписчика. Возвращённая функция отписки
// идемпотентна.
func (o *PollingThemeObserver) Subscribe(fn func(ThemeSnapshot)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	o.subs[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

// Close останавливает опрос.
func (o *PollingThemeObserver) Close() {
	o.once.Do(func() { close(o.stop) })
}

func (o *PollingThemeObserver) poll() {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-o.stop:
			return
		case <-ticker.C:
			snapshot := ThemeSnapshot{Params: o.bridge.Theme(), Scheme: o.bridge.Scheme()}

			o.mu.Lock()
			changed := snapshot != o.last
			if changed {
				o.last = snapshot
			}
			subs := make([]func(ThemeSnapshot), 0, len(o.subs))
			for _, fn := range o.subs {
				subs = append(subs, fn)
			}
			o.mu.Unlock()

			if changed {
				for _, fn := range subs {
					fn(snapshot)
				}
			}
		}
	}
}
