package entities

// ShopItem - товар витрины (сувениры и алкоголь). Не участвует в корзине:
// покупка оформляется на ресепшене при выезде.
type ShopItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Volume   string `json:"volume,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Упрощённое меню: один комплексный вариант на каждый приём пищи.
var (
	BreakfastItems = []MenuItem{
		{ID: "b-complex", Name: "Завтрак комплексный", Price: 500, Category: MealBreakfast},
	}

	DinnerItems = []MenuItem{
		{ID: "d-complex", Name: "Ужин комплексный", Price: 1000, Category: MealDinner},
	}
)

// MenuFor возвращает позиции меню для выбранного типа приёма пищи.
func MenuFor(meal MealType) []MenuItem {
	if meal == MealDinner {
		return DinnerItems
	}
	return BreakfastItems
}

// Souvenirs - витрина сувенирной лавки.
var Souvenirs = []ShopItem{
	{ID: "s1", Name: "Матрёшка расписная", Price: 800},
	{ID: "s2", Name: "Деревянная ложка", Price: 350},
	{ID: "s3", Name: "Керамическая кружка", Price: 450},
	{ID: "s4", Name: "Магнит с видом гор", Price: 150},
	{ID: "s5", Name: "Открытки набор (5 шт)", Price: 200},
	{ID: "s6", Name: "Текстильный платок", Price: 600},
}

// AlcoholItems - закрытый раздел, показывается только после промокода.
var AlcoholItems = []ShopItem{
	{ID: "a1", Name: "Вино красное сухое", Price: 1200, Volume: "750 мл"},
	{ID: "a2", Name: "Вино белое полусладкое", Price: 1100, Volume: "750 мл"},
	{ID: "a3", Name: "Пиво светлое", Price: 250, Volume: "500 мл"},
	{ID: "a4", Name: "Коньяк выдержанный", Price: 2500, Volume: "500 мл"},
}
