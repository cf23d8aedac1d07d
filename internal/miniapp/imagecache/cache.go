// Package imagecache отслеживает, какие изображения уже были загружены,
// чтобы показывать плейсхолдер только при первом показе. Это вспомогательная
// оптимизация: любая ошибка хранилища деградирует до пустого кэша и никогда
// не мешает показу изображений.
package imagecache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// DefaultTTL - срок жизни записи. Старше этого - запись устарела
// и удаляется при очистке.
const DefaultTTL = 30 * 24 * time.Hour

// Storage - персистентный носитель кэша. Формат: JSON-объект
// "URL -> unix-миллисекунды момента кэширования".
type Storage interface {
	// Load возвращает сохранённый снимок кэша. Отсутствие данных -
	// пустой срез без ошибки.
	Load() ([]byte, error)

	// Store записывает снимок кэша целиком.
	Store(data []byte) error
}

// Stats - сводка по кэшу для отладочных экранов.
type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Expired int `json:"expired"`
}

// Cache - трекер закэшированных изображений.
//
// Все операции безопасны для конкурентного вызова. Ошибки чтения и
// записи носителя проглатываются с логированием: кэш в худшем случае
// ведёт себя как пустой.
type Cache struct {
	storage Storage
	logger  *slog.Logger
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]int64 // URL -> unix millis
}

// Option настраивает Cache.
type Option func(*Cache)

// WithTTL задаёт срок жизни записи вместо DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New создаёт кэш и загружает снимок из storage. Повреждённый или
// недоступный снимок даёт пустой кэш.
func New(storage Storage, logger *slog.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Cache{
		storage: storage,
		logger:  logger,
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.load()
	return c
}

// IsImageCached сообщает, была ли картинка по URL уже загружена и
// не устарела ли запись.
func (c *Cache) IsImageCached(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, ok := c.entries[url]
	if !ok {
		return false
	}
	return c.fresh(ts)
}

// MarkCached помечает URL как загруженный с текущим временем и
// сразу персистит снимок.
func (c *Cache) MarkCached(url string) {
	c.mu.Lock()
	c.entries[url] = c.now().UnixMilli()
	c.mu.Unlock()

	c.persist()
}

// CleanupOldCache удаляет записи старше TTL. Снимок переписывается
// только если что-то было удалено. Возвращает число удалённых записей.
func (c *Cache) CleanupOldCache() int {
	c.mu.Lock()
	removed := 0
	for url, ts := range c.entries {
		if !c.fresh(ts) {
			delete(c.entries, url)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.persist()
		c.logger.Debug("image cache cleaned", slog.Int("removed", removed))
	}
	return removed
}

// Stats возвращает сводку: всего записей, свежих, устаревших.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Total: len(c.entries)}
	for _, ts := range c.entries {
		if c.fresh(ts) {
			s.Valid++
		} else {
			s.Expired++
		}
	}
	return s
}

func (c *Cache) fresh(ts int64) bool {
	age := c.now().Sub(time.UnixMilli(ts))
	return age < c.ttl
}

func (c *Cache) load() {
	if c.storage == nil {
		return
	}

	data, err := c.storage.Load()
	if err != nil {
		c.logger.Warn("image cache load failed, starting empty",
			slog.String("error", err.Error()))
		return
	}
	if len(data) == 0 {
		return
	}

	entries := make(map[string]int64)
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("image cache snapshot corrupted, starting empty",
			slog.String("error", err.Error()))
		return
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
}

func (c *Cache) persist() {
	if c.storage == nil {
		return
	}

	c.mu.Lock()
	data, err := json.Marshal(c.entries)
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn("image cache marshal failed",
			slog.String("error", err.Error()))
		return
	}

	if err := c.storage.Store(data); err != nil {
		storageErr := &domainerrors.StorageError{Op: "store image cache", Err: err}
		c.logger.Warn("image cache persist failed",
			slog.String("error", storageErr.Error()))
	}
}
