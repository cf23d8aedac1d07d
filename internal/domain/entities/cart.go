// Package entities содержит доменные сущности мини-приложения:
// каталог, корзину и заказ.
package entities

// MenuItem - неизменяемая позиция каталога.
type MenuItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // целые рубли, всегда > 0
	Category MealType `json:"category"`
}

// OrderItem - позиция корзины: MenuItem плюс количество (всегда >= 1).
type OrderItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart - корзина заказа, позиции уникальны по ID.
//
// Инварианты:
// - количество в позиции всегда >= 1; падение до нуля удаляет строку
// - повторное добавление существующей позиции увеличивает количество
// - итоговая сумма всегда пересчитывается из текущего содержимого
//
// Порядок позиций сохраняется в порядке первого добавления.
type Cart struct {
	items []OrderItem
}

// NewCart создаёт пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// Add adds one unit of item to the cart. If a row with the same ID already
// exists its quantity is incremented, otherwise a new row with quantity 1 is
// inserted. Pure state transition, no failure mode.
func (c *Cart) Add(item MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, OrderItem{MenuItem: item, Quantity: 1})
}

// Remove removes one unit of the item with the given ID. A row at quantity 1
// is deleted entirely; an absent ID is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		if c.items[i].Quantity > 1 {
			c.items[i].Quantity--
			return
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
}

// Quantity возвращает текущее количество позиции или 0, если её нет.
func (c *Cart) Quantity(itemID string) int {
	for i := range c.items {
		if c.items[i].ID == itemID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// TotalPrice folds price*quantity over the cart. Recomputed on every call,
// never cached, so it cannot drift from the rows.
func (c *Cart) TotalPrice() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Price * c.items[i].Quantity
	}
	return total
}

// TotalCount возвращает суммарное количество единиц во всех позициях.
func (c *Cart) TotalCount() int {
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no rows.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a snapshot copy of the cart rows.
func (c *Cart) Items() []OrderItem {
	snapshot := make([]OrderItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Clear удаляет все позиции.
func (c *Cart) Clear() {
	c.items = nil
}
