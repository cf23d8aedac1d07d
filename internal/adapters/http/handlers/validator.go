// Package handlers содержит HTTP handlers мини-приложения.
//
// Handler принимает запрос, преобразует его в команду application-слоя,
// вызывает use case и пишет ответ в плоской форме контракта.
package handlers

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/common"
	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
)

var setupOnce sync.Once

// SetupValidator настраивает кастомные валидаторы для Gin.
func SetupValidator() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			// Имена полей в ошибках берём из json tag.
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})

			_ = v.RegisterValidation("meal_type", validateMealType)
			_ = v.RegisterValidation("order_date", validateOrderDate)
		}
	})
}

func validateMealType(fl validator.FieldLevel) bool {
	return entities.MealType(fl.Field().String()).Valid()
}

func validateOrderDate(fl validator.FieldLevel) bool {
	return entities.OrderDate(fl.Field().String()).Valid()
}

// HandleBindingError пишет 400 с сообщением в форме контракта.
func HandleBindingError(c *gin.Context, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			switch fieldErr.Tag() {
			case "meal_type":
				common.Fail(c, http.StatusBadRequest, "Invalid meal type")
				return
			case "order_date":
				common.Fail(c, http.StatusBadRequest, "Invalid order date")
				return
			}
		}
	}
	common.Fail(c, http.StatusBadRequest, "Invalid request body")
}

// BindJSON биндит JSON тело запроса.
// Возвращает false если была ошибка (ответ уже отправлен).
func BindJSON[T any](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		HandleBindingError(c, err)
		return false
	}
	return true
}
