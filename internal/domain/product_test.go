package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		stock, minStock int
		want            bool
	}{
		{5, 5, true},
		{6, 5, false},
		{0, 0, true},
		{0, 5, true},
	}

	for _, c := range cases {
		p := Product{Stock: c.stock, MinStock: c.minStock}
		assert.Equal(t, c.want, p.IsLowStock(), "stock=%d minStock=%d", c.stock, c.minStock)
	}
}

func TestNewProductDefaults(t *testing.T) {
	p := NewProduct("Vestido", "Longo", 12990, "vestidos", "https://img")
	assert.True(t, p.Available)
	assert.Equal(t, DefaultMinStock, p.MinStock)
	assert.Zero(t, p.Stock)
}

func TestProductApply(t *testing.T) {
	p := Product{ID: 1, Name: "Saia", Price: 5000, Stock: 3}
	name, stock, badge := "Saia midi", 10, "LIMITADO"

	updated := p.Apply(ProductPatch{Name: &name, Stock: &stock, Badge: &badge})

	assert.Equal(t, "Saia midi", updated.Name)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, int64(5000), updated.Price)
	assert.Equal(t, "LIMITADO", *updated.Badge)
	assert.Equal(t, "Saia", p.Name, "original must not change")
}
