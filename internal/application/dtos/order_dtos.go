// Package dtos - команды и результаты application-слоя.
// HTTP-слой преобразует тела запросов в команды и обратно, не протаскивая
// gin-типы внутрь use cases.
package dtos

import (
	"time"

	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
)

// OrderItemDTO - позиция заказа в том виде, в котором её шлёт клиент.
type OrderItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// SendOrderCommand - команда отправки заказа администратору.
//
// TotalPrice приходит от клиента и используется как есть: клиент пересчитывает
// сумму из корзины при каждом обращении, сервер только ретранслирует заказ.
type SendOrderCommand struct {
	Items      []OrderItemDTO
	TotalPrice int
	MealType   string
	OrderDate  string
	UserName   string
	UserID     int64
}

// ToOrder собирает доменный Order из команды.
func (c SendOrderCommand) ToOrder() *entities.Order {
	items := make([]entities.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entities.OrderItem{
			MenuItem: entities.MenuItem{ID: it.ID, Name: it.Name, Price: it.Price},
			Quantity: it.Quantity,
		})
	}
	return &entities.Order{
		Items:      items,
		TotalPrice: c.TotalPrice,
		MealType:   entities.MealType(c.MealType),
		OrderDate:  entities.OrderDate(c.OrderDate),
		UserName:   c.UserName,
		UserID:     c.UserID,
		CreatedAt:  time.Now().UTC(),
	}
}

// ArchivedOrderDTO - заказ из истории для админ-панели.
type ArchivedOrderDTO struct {
	ID         int64          `json:"id"`
	Items      []OrderItemDTO `json:"items"`
	TotalPrice int            `json:"totalPrice"`
	MealType   string         `json:"mealType"`
	OrderDate  string         `json:"orderDate"`
	UserName   string         `json:"userName,omitempty"`
	UserID     int64          `json:"userId,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// FromArchived преобразует доменный архивный заказ в DTO.
func FromArchived(o entities.ArchivedOrder) ArchivedOrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemDTO{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return ArchivedOrderDTO{
		ID:         o.ID,
		Items:      items,
		TotalPrice: o.TotalPrice,
		MealType:   string(o.MealType),
		OrderDate:  string(o.OrderDate),
		UserName:   o.UserName,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
	}
}
