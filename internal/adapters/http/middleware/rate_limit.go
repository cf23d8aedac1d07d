package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig - конфигурация rate limiting.
type RateLimitConfig struct {
	// Limit - запросов за окно.
	Limit int
	// Window - длительность окна.
	Window time.Duration
	// KeyFunc определяет ключ лимитирования, по умолчанию IP клиента.
	KeyFunc func(*gin.Context) string
}

// DefaultRateLimitConfig - конфигурация по умолчанию.
// Аудитория сервиса - гости одного дома, лимит щадящий.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Limit:  60,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// OrderRateLimit - более строгий лимит для отправки заказов:
// защита от случайного двойного тапа и накрутки уведомлений админу.
func OrderRateLimit() gin.HandlerFunc {
	return RateLimit(&RateLimitConfig{
		Limit:  10,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP() + ":" + c.Request.URL.Path
		},
	})
}

type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *RateLimitConfig
}

type bucket struct {
	tokens    int
	lastReset time.Time
}

func newRateLimiter(config *RateLimitConfig) *rateLimiter {
	rl := &rateLimiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	go rl.cleanup()

	return rl
}

// allow возвращает разрешение и остаток токенов для ключа.
func (rl *rateLimiter) allow(key string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, exists := rl.buckets[key]

	if !exists || now.Sub(b.lastReset) >= rl.config.Window {
		rl.buckets[key] = &bucket{
			tokens:    rl.config.Limit - 1,
			lastReset: now,
		}
		return true, rl.config.Limit - 1, rl.config.Window
	}

	retryAfter := rl.config.Window - now.Sub(b.lastReset)
	if b.tokens <= 0 {
		return false, 0, retryAfter
	}

	b.tokens--
	return true, b.tokens, retryAfter
}

// cleanup удаляет неактивные корзины, чтобы map не рос бесконечно.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.config.Window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.buckets {
			if now.Sub(b.lastReset) > rl.config.Window*2 {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit ограничивает количество запросов по fixed window counter.
// При превышении лимита возвращает 429 с Retry-After.
func RateLimit(config *RateLimitConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	limiter := newRateLimiter(config)

	return func(c *gin.Context) {
		key := config.KeyFunc(c)
		allowed, remaining, retryAfter := limiter.allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retrySeconds := int(retryAfter.Seconds())
			if retrySeconds < 1 {
				retrySeconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(retrySeconds))

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
