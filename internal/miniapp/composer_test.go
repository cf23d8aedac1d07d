package miniapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

var (
	breakfastComplex = entities.MenuItem{
		ID:       "b-complex",
		Name:     "Завтрак комплексный",
		Price:    500,
		Category: entities.MealBreakfast,
	}
	dinnerComplex = entities.MenuItem{
		ID:       "d-complex",
		Name:     "Ужин комплексный",
		Price:    1000,
		Category: entities.MealDinner,
	}
)

// mockSender - отправка заказа с настраиваемым поведением.
type mockSender struct {
	SendFn func(ctx context.Context, order SendOrderRequest) error
	calls  int
}

func (m *mockSender) SendOrder(ctx context.Context, order SendOrderRequest) error {
	m.calls++
	if m.SendFn != nil {
		return m.SendFn(ctx, order)
	}
	return nil
}

func TestComposer_CartOperations(t *testing.T) {
	c := NewComposer(&mockBridge{}, &mockSender{})

	c.AddToCart(breakfastComplex)
	c.AddToCart(dinnerComplex)
	c.AddToCart(dinnerComplex)

	assert.Equal(t, 1, c.Quantity("b-complex"))
	assert.Equal(t, 2, c.Quantity("d-complex"))
	assert.Equal(t, 2500, c.TotalPrice())

	c.RemoveFromCart("d-complex")
	assert.Equal(t, 1, c.Quantity("d-complex"))
	assert.Equal(t, 1500, c.TotalPrice())

	// Убавление до нуля удаляет строку, лишний Remove - no-op.
	c.RemoveFromCart("d-complex")
	c.RemoveFromCart("d-complex")
	assert.Equal(t, 0, c.Quantity("d-complex"))
	assert.Equal(t, 500, c.TotalPrice())
}

func TestComposer_Switches(t *testing.T) {
	c := NewComposer(&mockBridge{}, &mockSender{})

	// Дефолты: завтрак на завтра.
	assert.Equal(t, entities.MealBreakfast, c.MealType())
	assert.Equal(t, entities.DateTomorrow, c.OrderDate())

	c.SetMealType(entities.MealDinner)
	c.SetOrderDate(entities.DateDayAfter)
	assert.Equal(t, entities.MealDinner, c.MealType())
	assert.Equal(t, entities.DateDayAfter, c.OrderDate())

	// Неизвестные значения игнорируются.
	c.SetMealType(entities.MealType("brunch"))
	c.SetOrderDate(entities.OrderDate("today"))
	assert.Equal(t, entities.MealDinner, c.MealType())
	assert.Equal(t, entities.DateDayAfter, c.OrderDate())
}

func TestComposer_SubmitEmptyCart(t *testing.T) {
	bridge := &mockBridge{}
	sender := &mockSender{}
	c := NewComposer(bridge, sender)

	notice, err := c.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Equal(t, "Выберите хотя бы одно блюдо", notice.Title)
	assert.Zero(t, sender.calls, "no network call for an empty cart")

	kind, ok := bridge.lastNotify()
	require.True(t, ok)
	assert.Equal(t, HapticError, kind)
}

func TestComposer_SubmitSuccess(t *testing.T) {
	var got SendOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/send-order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Order sent successfully"}`))
	}))
	defer server.Close()

	bridge := &mockBridge{
		user: &WebAppUser{ID: 42, FirstName: "Иван", LastName: "Петров", Username: "ivan"},
	}
	c := NewComposer(bridge, NewClient(server.URL))

	c.AddToCart(breakfastComplex)
	c.AddToCart(dinnerComplex)
	c.AddToCart(dinnerComplex)
	c.SetMealType(entities.MealDinner)

	notice, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2500, got.TotalPrice)
	assert.Equal(t, "dinner", got.MealType)
	assert.Equal(t, "tomorrow", got.OrderDate)
	assert.Equal(t, "Иван Петров (@ivan)", got.UserName)
	assert.Equal(t, int64(42), got.UserID)
	require.Len(t, got.Items, 2)

	assert.Equal(t, "Заказ на завтра отправлен администратору!", notice.Title)
	assert.Equal(t, "Ужин на сумму 2500 ₽", notice.Description)

	// Корзина очищается только после успешного ответа.
	assert.Equal(t, 0, c.TotalPrice())

	kind, ok := bridge.lastNotify()
	require.True(t, ok)
	assert.Equal(t, HapticSuccess, kind)
}

func TestComposer_SubmitFailureKeepsCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to send message"}`))
	}))
	defer server.Close()

	bridge := &mockBridge{}
	c := NewComposer(bridge, NewClient(server.URL))

	c.AddToCart(breakfastComplex)

	notice, err := c.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsTransport(err))
	assert.Equal(t, "Не удалось отправить заказ", notice.Title)
	assert.Equal(t, "Попробуйте еще раз", notice.Description)

	// Состояние сохранено для ручного повтора.
	assert.Equal(t, 1, c.Quantity("b-complex"))

	kind, ok := bridge.lastNotify()
	require.True(t, ok)
	assert.Equal(t, HapticError, kind)
}

func TestComposer_SubmitWithoutIdentity(t *testing.T) {
	sender := &mockSender{}
	var got SendOrderRequest
	sender.SendFn = func(ctx context.Context, order SendOrderRequest) error {
		got = order
		return nil
	}

	c := NewComposer(nil, sender)
	c.AddToCart(breakfastComplex)

	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Гость", got.UserName)
	assert.Zero(t, got.UserID)
}
