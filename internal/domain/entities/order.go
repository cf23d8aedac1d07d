package entities

import (
	"fmt"
	"strings"
	"time"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// MealType - тип приёма пищи.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealDinner    MealType = "dinner"
)

// Valid reports whether the meal type is one of the two known values.
func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealDinner
}

// Title возвращает русское название для сообщений гостю и администратору.
func (m MealType) Title() string {
	if m == MealDinner {
		return "Ужин"
	}
	return "Завтрак"
}

// OrderDate - выбор даты заказа: завтра или послезавтра.
type OrderDate string

const (
	DateTomorrow OrderDate = "tomorrow"
	DateDayAfter OrderDate = "dayAfter"
)

// Valid reports whether the date choice is one of the two known values.
func (d OrderDate) Valid() bool {
	return d == DateTomorrow || d == DateDayAfter
}

// Title возвращает русское название даты.
func (d OrderDate) Title() string {
	if d == DateDayAfter {
		return "послезавтра"
	}
	return "завтра"
}

// Order - заказ, собранный в момент отправки из снимка корзины.
// Transient: существует только на время одного вызова отправки.
type Order struct {
	Items      []OrderItem
	TotalPrice int
	MealType   MealType
	OrderDate  OrderDate
	UserName   string // пустая строка = гость без имени
	UserID     int64  // 0 = identity недоступна
	CreatedAt  time.Time
}

// NewOrder composes an Order from the current cart contents. The total is
// recomputed from the snapshot, not taken from the caller. An empty cart is
// a validation failure: no order object is produced and no request may be
// issued for it.
func NewOrder(cart *Cart, mealType MealType, orderDate OrderDate, userName string, userID int64) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if !mealType.Valid() {
		return nil, domainerrors.ValidationError{Field: "mealType", Message: "unknown meal type"}
	}
	if !orderDate.Valid() {
		return nil, domainerrors.ValidationError{Field: "orderDate", Message: "unknown order date"}
	}

	return &Order{
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice(),
		MealType:   mealType,
		OrderDate:  orderDate,
		UserName:   userName,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ArchivedOrder - заказ, сохранённый в истории для админ-панели.
type ArchivedOrder struct {
	ID int64
	Order
}

// AdminMessage formats the order as the HTML message relayed to the admin
// chat. Layout is fixed: header, meal and date, numbered item lines with
// per-line totals, grand total, optional guest identity.
func (o *Order) AdminMessage() string {
	mealIcon := "🌅"
	if o.MealType == MealDinner {
		mealIcon = "🌙"
	}

	var b strings.Builder
	b.WriteString("🔔 <b>Новый заказ!</b>\n\n")
	fmt.Fprintf(&b, "%s %s на <b>%s</b>\n\n", mealIcon, o.MealType.Title(), o.OrderDate.Title())
	b.WriteString("📋 <b>Состав заказа:</b>\n")

	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. %s x%d — %d ₽\n", i+1, item.Name, item.Quantity, item.Price*item.Quantity)
	}

	fmt.Fprintf(&b, "\n💰 <b>Итого:</b> %d ₽\n", o.TotalPrice)

	if o.UserName != "" {
		fmt.Fprintf(&b, "\n👤 <b>Гость:</b> %s", o.UserName)
		if o.UserID != 0 {
			fmt.Fprintf(&b, " (ID: %d)", o.UserID)
		}
	}

	return b.String()
}
