package promostore

import (
	"context"
	"sync"
)

// MemoryStore - in-process реализация PromoStore для локальной разработки
// и тестов. Состояние теряется при перезапуске, поэтому в production
// используется RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	code    string
	hasFlag bool
	visible bool
}

// NewMemoryStore создаёт пустой store (раздел виден по умолчанию).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetCode возвращает текущий промокод или "" если он не задан.
func (s *MemoryStore) GetCode(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code, nil
}

// EnsureCode устанавливает candidate, если код ещё не задан,
// и возвращает победивший код.
func (s *MemoryStore) EnsureCode(ctx context.Context, candidate string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.code == "" {
		s.code = candidate
	}
	return s.code, nil
}

// SetCode безусловно заменяет промокод.
func (s *MemoryStore) SetCode(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	return nil
}

// GetVisibility возвращает флаг видимости (true, пока он не переключался).
func (s *MemoryStore) GetVisibility(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFlag {
		return true, nil
	}
	return s.visible, nil
}

// ToggleVisibility инвертирует флаг под мьютексом и возвращает новое значение.
func (s *MemoryStore) ToggleVisibility(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFlag {
		s.hasFlag = true
		s.visible = false
		return false, nil
	}
	s.visible = !s.visible
	return s.visible, nil
}

// Ping всегда успешен: хранилище живёт в памяти процесса.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
