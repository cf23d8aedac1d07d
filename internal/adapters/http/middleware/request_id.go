// Package middleware содержит HTTP middleware мини-приложения.
//
// Цепочка собирается в router: Recovery -> RequestID -> CORS -> Logging ->
// RateLimit -> Metrics. Каждый middleware отвечает за одну задачу.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader - имя заголовка для Request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey - ключ для хранения Request ID в контексте
	RequestIDContextKey = "request_id"
)

// RequestID добавляет уникальный ID к каждому запросу: связывает логи
// одного запроса и попадает в response headers.
//
// Если клиент передаёт X-Request-ID - используем его,
// иначе генерируем новый UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID извлекает Request ID из контекста Gin.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDContextKey); exists {
		if strID, ok := id.(string); ok {
			return strID
		}
	}
	return ""
}
