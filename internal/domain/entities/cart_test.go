package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	breakfast = MenuItem{ID: "b-complex", Name: "Завтрак комплексный", Price: 500, Category: MealBreakfast}
	dinner    = MenuItem{ID: "d-complex", Name: "Ужин комплексный", Price: 1000, Category: MealDinner}
)

func TestCart_AddIncrementsExistingRow(t *testing.T) {
	cart := NewCart()

	cart.Add(breakfast)
	cart.Add(breakfast)
	cart.Add(breakfast)

	assert.Equal(t, 3, cart.Quantity("b-complex"))
	assert.Len(t, cart.Items(), 1, "no duplicate rows for the same ID")
}

func TestCart_RemoveDecrementsAndDeletes(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)
	cart.Add(breakfast)

	cart.Remove("b-complex")
	assert.Equal(t, 1, cart.Quantity("b-complex"))

	cart.Remove("b-complex")
	assert.Equal(t, 0, cart.Quantity("b-complex"))
	assert.True(t, cart.IsEmpty(), "quantity reaching zero deletes the row")
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)

	cart.Remove("no-such-item")

	assert.Equal(t, 1, cart.Quantity("b-complex"))
	assert.Equal(t, 0, cart.Quantity("no-such-item"))
}

// Final quantity equals adds minus removes, floored at row deletion,
// never negative.
func TestCart_AddRemoveSequences(t *testing.T) {
	tests := []struct {
		name            string
		adds, removes   int
		wantQty         int
	}{
		{"MoreAddsThanRemoves", 5, 2, 3},
		{"EqualAddsRemoves", 3, 3, 0},
		{"MoreRemovesThanAdds", 2, 6, 0},
		{"OnlyRemoves", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			for i := 0; i < tt.adds; i++ {
				cart.Add(dinner)
			}
			for i := 0; i < tt.removes; i++ {
				cart.Remove(dinner.ID)
			}
			assert.Equal(t, tt.wantQty, cart.Quantity(dinner.ID))
			assert.GreaterOrEqual(t, cart.Quantity(dinner.ID), 0)
		})
	}
}

func TestCart_TotalPrice(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0, cart.TotalPrice())

	cart.Add(breakfast) // 500
	cart.Add(dinner)    // 1000
	cart.Add(dinner)    // 2000
	assert.Equal(t, 2500, cart.TotalPrice())
	assert.Equal(t, 3, cart.TotalCount())

	cart.Remove(breakfast.ID)
	cart.Remove(dinner.ID)
	cart.Remove(dinner.ID)
	assert.Equal(t, 0, cart.TotalPrice(), "removing all rows yields total 0")
}

func TestCart_ItemsReturnsSnapshot(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)

	snapshot := cart.Items()
	require.Len(t, snapshot, 1)
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, cart.Quantity(breakfast.ID), "mutating the snapshot must not touch the cart")
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(breakfast)
	cart.Add(dinner)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalPrice())
}
