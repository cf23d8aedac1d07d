package miniapp

import "sync"

// Page - экран приложения. Активен ровно один.
type Page string

const (
	PageHome        Page = "home"
	PageAttractions Page = "attractions"
	PageMenu        Page = "menu"
	PageShop        Page = "shop"
	PageAlcohol     Page = "alcohol"
	PageAbout       Page = "about"
	PageAdmin       Page = "admin"
)

// Valid reports whether the page is one of the known screens.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageAttractions, PageMenu, PageShop, PageAlcohol, PageAbout, PageAdmin:
		return true
	}
	return false
}

// Navigator держит единственный источник правды о текущем экране.
//
// Истории нет: Back всегда ведёт к фиксированному предшественнику
// (shop для алкогольного раздела, home для всего остального).
// Видимость кнопки "Назад" хоста зеркалит "страница != home", её
// нажатие вызывает тот же Back.
type Navigator struct {
	bridge Bridge

	mu      sync.Mutex
	current Page
}

// NewNavigator создаёт навигатор на главном экране.
func NewNavigator(bridge Bridge) *Navigator {
	n := &Navigator{bridge: bridge, current: PageHome}
	n.syncBackButton()
	return n
}

// Current возвращает активный экран.
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// NavigateTo делает page активным с лёгким тактильным откликом.
// Неизвестная страница игнорируется.
func (n *Navigator) NavigateTo(page Page) {
	if !page.Valid() {
		return
	}

	Impact(n.bridge, HapticLight)

	n.mu.Lock()
	n.current = page
	n.mu.Unlock()

	n.syncBackButton()
}

// Back возвращает к фиксированному предшественнику текущего экрана.
func (n *Navigator) Back() {
	Impact(n.bridge, HapticLight)

	n.mu.Lock()
	if n.current == PageAlcohol {
		n.current = PageShop
	} else {
		n.current = PageHome
	}
	n.mu.Unlock()

	n.syncBackButton()
}

func (n *Navigator) syncBackButton() {
	if n.bridge == nil {
		return
	}

	if n.Current() == PageHome {
		n.bridge.HideBackButton()
	} else {
		n.bridge.ShowBackButton(n.Back)
	}
}
