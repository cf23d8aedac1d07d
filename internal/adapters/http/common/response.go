// Package common - helpers для JSON-ответов API.
//
// Контракт ответов плоский: поля ответа лежат на верхнем уровне,
// ошибки всегда выглядят как {"error": "..."}. Клиент мини-приложения
// завязан на эту форму, конвертов и вложенных объектов здесь нет.
package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// OK пишет успешный ответ с переданными полями верхнего уровня.
func OK(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

// Fail пишет ошибку в форме {"error": message}.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FailFromError мапит доменную ошибку на статус и текст контракта.
func FailFromError(c *gin.Context, err error) {
	var validationErr domainerrors.ValidationError

	switch {
	case errors.Is(err, domainerrors.ErrEmptyCart):
		Fail(c, http.StatusBadRequest, "No items in order")
	case errors.As(err, &validationErr):
		Fail(c, http.StatusBadRequest, validationErr.Message)
	case domainerrors.IsUnauthorized(err):
		Fail(c, http.StatusForbidden, "Unauthorized")
	case domainerrors.IsNotConfigured(err):
		Fail(c, http.StatusInternalServerError, "Server configuration error")
	case domainerrors.IsTransport(err):
		Fail(c, http.StatusInternalServerError, "Failed to send message")
	default:
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
