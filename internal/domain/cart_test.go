package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTransitionsArePure(t *testing.T) {
	empty := NewCart()
	one := empty.Add(CartItem{ProductID: 1, Name: "Blusa", UnitPrice: 4990, Quantity: 1})
	two := one.Add(CartItem{ProductID: 1, Name: "Blusa", UnitPrice: 4990, Quantity: 2})

	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 1, one.Items()[0].Quantity)
	assert.Equal(t, 3, two.Items()[0].Quantity)
	assert.Equal(t, 1, two.Len())
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	c := NewCart(
		CartItem{ProductID: 1, UnitPrice: 1000, Quantity: 1},
		CartItem{ProductID: 2, UnitPrice: 2500, Quantity: 2},
	)

	c2 := c.SetQuantity(1, 4)
	assert.Equal(t, int64(4*1000+2*2500), c2.Total())
	assert.Equal(t, int64(1000+2*2500), c.Total())

	c3 := c2.SetQuantity(2, 0)
	assert.Equal(t, 1, c3.Len())
	assert.Equal(t, int64(1), c3.Items()[0].ProductID)

	assert.True(t, c3.Remove(1).IsEmpty())
}

func TestCartIgnoresNonPositiveAdd(t *testing.T) {
	c := NewCart().Add(CartItem{ProductID: 1, Quantity: 0})
	assert.True(t, c.IsEmpty())
}

func TestCartTotalOverflow(t *testing.T) {
	c := NewCart(CartItem{ProductID: 1, UnitPrice: 10000, Quantity: 1 << 60})

	_, ok := c.CheckedTotal()
	assert.False(t, ok)
	assert.Equal(t, int64(math.MaxInt64), c.Total())

	_, ok = NewCart(
		CartItem{ProductID: 1, UnitPrice: math.MaxInt64 / 2, Quantity: 1},
		CartItem{ProductID: 2, UnitPrice: math.MaxInt64 / 2, Quantity: 1},
		CartItem{ProductID: 3, UnitPrice: 2, Quantity: 1},
	).CheckedTotal()
	assert.False(t, ok)

	total, ok := NewCart(CartItem{ProductID: 1, UnitPrice: 4990, Quantity: 3}).CheckedTotal()
	assert.True(t, ok)
	assert.Equal(t, int64(14970), total)
}

func TestCartAddSaturatesQuantity(t *testing.T) {
	c := NewCart(
		CartItem{ProductID: 1, UnitPrice: 1, Quantity: math.MaxInt},
		CartItem{ProductID: 1, UnitPrice: 1, Quantity: 5},
	)

	assert.Equal(t, math.MaxInt, c.Items()[0].Quantity)
	assert.True(t, c.ExceedsQuantity(MaxItemQuantity))
	assert.False(t, NewCart(CartItem{ProductID: 1, Quantity: MaxItemQuantity}).ExceedsQuantity(MaxItemQuantity))
}
