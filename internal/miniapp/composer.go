package miniapp

import (
	"context"
	"fmt"

	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// OrderSender - исходящий вызов отправки заказа.
type OrderSender interface {
	SendOrder(ctx context.Context, order SendOrderRequest) error
}

// Notice - пользовательское уведомление (toast).
type Notice struct {
	Title       string
	Description string
}

// Composer собирает заказ: корзина по ID позиции, переключатели типа
// еды и даты. Состояние живёт до отправки; корзина очищается только
// после успешного ответа сервера.
type Composer struct {
	bridge Bridge
	sender OrderSender

	cart      *entities.Cart
	mealType  entities.MealType
	orderDate entities.OrderDate
}

// NewComposer создаёт composer с дефолтами: завтрак на завтра.
func NewComposer(bridge Bridge, sender OrderSender) *Composer {
	return &Composer{
		bridge:    bridge,
		sender:    sender,
		cart:      entities.NewCart(),
		mealType:  entities.MealBreakfast,
		orderDate: entities.DateTomorrow,
	}
}

// AddToCart добавляет позицию: существующая строка инкрементируется.
func (c *Composer) AddToCart(item entities.MenuItem) {
	Impact(c.bridge, HapticLight)
	c.cart.Add(item)
}

// RemoveFromCart убавляет позицию: количество 1 удаляет строку,
// отсутствующий ID - no-op.
func (c *Composer) RemoveFromCart(itemID string) {
	Impact(c.bridge, HapticLight)
	c.cart.Remove(itemID)
}

// Quantity возвращает текущее количество позиции (0 если её нет).
func (c *Composer) Quantity(itemID string) int {
	return c.cart.Quantity(itemID)
}

// TotalPrice пересчитывает сумму из корзины при каждом вызове.
func (c *Composer) TotalPrice() int {
	return c.cart.TotalPrice()
}

// MealType возвращает выбранный тип еды.
func (c *Composer) MealType() entities.MealType {
	return c.mealType
}

// SetMealType переключает тип еды. Неизвестное значение игнорируется.
func (c *Composer) SetMealType(m entities.MealType) {
	if m.Valid() {
		c.mealType = m
	}
}

// OrderDate возвращает выбранную дату.
func (c *Composer) OrderDate() entities.OrderDate {
	return c.orderDate
}

// SetOrderDate переключает дату. Неизвестное значение игнорируется.
func (c *Composer) SetOrderDate(d entities.OrderDate) {
	if d.Valid() {
		c.orderDate = d
	}
}

// Submit отправляет заказ.
//
// Пустая корзина - валидация до сети: возвращается уведомление и
// ValidationError, запрос не уходит. Ровно один запрос на вызов, без
// ретраев. При ошибке транспорта корзина сохраняется для ручного
// повтора; очистка только на успехе.
func (c *Composer) Submit(ctx context.Context) (Notice, error) {
	if c.cart.IsEmpty() {
		Notify(c.bridge, HapticError)
		return Notice{Title: "Выберите хотя бы одно блюдо"},
			domainerrors.ValidationError{Field: "items", Message: "Выберите хотя бы одно блюдо"}
	}

	order, err := entities.NewOrder(c.cart, c.mealType, c.orderDate, c.guestName(), c.guestID())
	if err != nil {
		Notify(c.bridge, HapticError)
		return Notice{Title: "Не удалось отправить заказ", Description: "Попробуйте еще раз"}, err
	}

	req := SendOrderRequest{
		Items:      make([]SendOrderItem, 0, len(order.Items)),
		TotalPrice: order.TotalPrice,
		MealType:   string(order.MealType),
		OrderDate:  string(order.OrderDate),
		UserName:   order.UserName,
		UserID:     order.UserID,
	}
	for _, item := range order.Items {
		req.Items = append(req.Items, SendOrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if err := c.sender.SendOrder(ctx, req); err != nil {
		Notify(c.bridge, HapticError)
		return Notice{Title: "Не удалось отправить заказ", Description: "Попробуйте еще раз"}, err
	}

	c.cart.Clear()
	Notify(c.bridge, HapticSuccess)

	return Notice{
		Title:       fmt.Sprintf("Заказ на %s отправлен администратору!", order.OrderDate.Title()),
		Description: fmt.Sprintf("%s на сумму %d ₽", order.MealType.Title(), order.TotalPrice),
	}, nil
}

// guestName резолвит имя гостя из моста с fallback "Гость".
func (c *Composer) guestName() string {
	u, _ := BridgeUser(c.bridge)
	return FormatUserName(u)
}

func (c *Composer) guestID() int64 {
	if u, ok := BridgeUser(c.bridge); ok {
		return u.ID
	}
	return 0
}
