// Package promostore - реализации ports.PromoStore.
//
// Промокод и флаг видимости принадлежат внешнему хранилищу, а не переменным
// процесса: cold start инстанса или второй инстанс за балансировщиком видят
// одно и то же состояние.
package promostore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	codeKey       = "horomi:promo_code"
	visibilityKey = "horomi:secret_visible"
)

// toggleScript атомарно инвертирует флаг видимости.
// Отсутствующий ключ трактуется как '1' (виден по умолчанию).
var toggleScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if v == false then v = '1' end
local nv = '0'
if v == '0' then nv = '1' end
redis.call('SET', KEYS[1], nv)
return nv
`)

// RedisStore - production-реализация PromoStore поверх Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создаёт store поверх готового клиента.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Connect подключается к Redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStore(client), nil
}

// GetCode возвращает текущий промокод или "" если он не задан.
func (s *RedisStore) GetCode(ctx context.Context) (string, error) {
	code, err := s.client.Get(ctx, codeKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get promo code: %w", err)
	}
	return code, nil
}

// EnsureCode устанавливает candidate через SETNX и возвращает победивший код.
func (s *RedisStore) EnsureCode(ctx context.Context, candidate string) (string, error) {
	set, err := s.client.SetNX(ctx, codeKey, candidate, 0).Result()
	if err != nil {
		return "", fmt.Errorf("redis setnx promo code: %w", err)
	}
	if set {
		return candidate, nil
	}
	// Кто-то успел раньше - отдаём его код.
	return s.GetCode(ctx)
}

// SetCode безусловно заменяет промокод.
func (s *RedisStore) SetCode(ctx context.Context, code string) error {
	if err := s.client.Set(ctx, codeKey, code, 0).Err(); err != nil {
		return fmt.Errorf("redis set promo code: %w", err)
	}
	return nil
}

// GetVisibility возвращает флаг видимости (true, пока ключа нет).
func (s *RedisStore) GetVisibility(ctx context.Context) (bool, error) {
	v, err := s.client.Get(ctx, visibilityKey).Result()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get visibility: %w", err)
	}
	return v != "0", nil
}

// ToggleVisibility инвертирует флаг одним Lua-скриптом, без read-modify-write
// гонки между инстансами.
func (s *RedisStore) ToggleVisibility(ctx context.Context) (bool, error) {
	v, err := toggleScript.Run(ctx, s.client, []string{visibilityKey}).Text()
	if err != nil {
		return false, fmt.Errorf("redis toggle visibility: %w", err)
	}
	return v != "0", nil
}

// Ping проверяет соединение с Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close закрывает клиент.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
