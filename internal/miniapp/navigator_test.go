package miniapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_StartsAtHome(t *testing.T) {
	bridge := &mockBridge{}
	nav := NewNavigator(bridge)

	assert.Equal(t, PageHome, nav.Current())
	assert.False(t, bridge.backShown(), "back button hidden on home")
}

func TestNavigator_BackButtonMirrorsPage(t *testing.T) {
	bridge := &mockBridge{}
	nav := NewNavigator(bridge)

	nav.NavigateTo(PageMenu)
	assert.Equal(t, PageMenu, nav.Current())
	assert.True(t, bridge.backShown())

	nav.Back()
	assert.Equal(t, PageHome, nav.Current())
	assert.False(t, bridge.backShown())
}

func TestNavigator_BackDestinations(t *testing.T) {
	tests := []struct {
		name string
		from Page
		want Page
	}{
		{name: "alcohol returns to shop", from: PageAlcohol, want: PageShop},
		{name: "shop returns to home", from: PageShop, want: PageHome},
		{name: "menu returns to home", from: PageMenu, want: PageHome},
		{name: "admin returns to home", from: PageAdmin, want: PageHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(&mockBridge{})

			nav.NavigateTo(tt.from)
			nav.Back()

			assert.Equal(t, tt.want, nav.Current())
		})
	}
}

func TestNavigator_HostBackButtonTriggersBack(t *testing.T) {
	bridge := &mockBridge{}
	nav := NewNavigator(bridge)

	nav.NavigateTo(PageAlcohol)

	// Нажатие системной кнопки хоста эквивалентно Back.
	bridge.pressBack()

	assert.Equal(t, PageShop, nav.Current())
	assert.True(t, bridge.backShown(), "shop is not home, back stays visible")
}

func TestNavigator_IgnoresUnknownPage(t *testing.T) {
	nav := NewNavigator(&mockBridge{})

	nav.NavigateTo(PageAbout)
	nav.NavigateTo(Page("settings"))

	assert.Equal(t, PageAbout, nav.Current())
}

func TestNavigator_NilBridge(t *testing.T) {
	nav := NewNavigator(nil)

	assert.NotPanics(t, func() {
		nav.NavigateTo(PageAlcohol)
		nav.Back()
	})
	assert.Equal(t, PageShop, nav.Current())
}
