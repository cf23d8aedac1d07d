package entities

import (
	"errors"
	"testing"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_EmptyCart(t *testing.T) {
	_, err := NewOrder(NewCart(), MealBreakfast, DateTomorrow, "", 0)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))

	_, err = NewOrder(nil, MealBreakfast, DateTomorrow, "", 0)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestNewOrder_InvalidSelectors(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)

	_, err := NewOrder(cart, MealType("lunch"), DateTomorrow, "", 0)
	assert.True(t, domainerrors.IsValidation(err))

	_, err = NewOrder(cart, MealBreakfast, OrderDate("today"), "", 0)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestNewOrder_RecomputesTotalFromSnapshot(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)
	cart.Add(dinner)
	cart.Add(dinner)

	order, err := NewOrder(cart, MealDinner, DateTomorrow, "Иван Петров", 42)
	require.NoError(t, err)

	assert.Equal(t, 2500, order.TotalPrice)
	assert.Len(t, order.Items, 2)

	// Changing the cart afterwards must not affect the composed order.
	cart.Clear()
	assert.Equal(t, 2500, order.TotalPrice)
	assert.Len(t, order.Items, 2)
}

func TestOrder_AdminMessage(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)
	cart.Add(dinner)
	cart.Add(dinner)

	order, err := NewOrder(cart, MealDinner, DateTomorrow, "Иван Петров (@ivan)", 42)
	require.NoError(t, err)

	msg := order.AdminMessage()
	assert.Contains(t, msg, "Новый заказ!")
	assert.Contains(t, msg, "Ужин на <b>завтра</b>")
	assert.Contains(t, msg, "1. Завтрак комплексный x1 — 500 ₽")
	assert.Contains(t, msg, "2. Ужин комплексный x2 — 2000 ₽")
	assert.Contains(t, msg, "<b>Итого:</b> 2500 ₽")
	assert.Contains(t, msg, "Иван Петров (@ivan)")
	assert.Contains(t, msg, "(ID: 42)")
}

func TestOrder_AdminMessage_AnonymousGuest(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)

	order, err := NewOrder(cart, MealBreakfast, DateDayAfter, "", 0)
	require.NoError(t, err)

	msg := order.AdminMessage()
	assert.Contains(t, msg, "Завтрак на <b>послезавтра</b>")
	assert.NotContains(t, msg, "Гость")
	assert.NotContains(t, msg, "ID:")
}

func TestMealTypeAndOrderDate(t *testing.T) {
	assert.True(t, MealBreakfast.Valid())
	assert.True(t, MealDinner.Valid())
	assert.False(t, MealType("brunch").Valid())

	assert.True(t, DateTomorrow.Valid())
	assert.True(t, DateDayAfter.Valid())
	assert.False(t, OrderDate("").Valid())

	assert.Equal(t, "Завтрак", MealBreakfast.Title())
	assert.Equal(t, "послезавтра", DateDayAfter.Title())
}
