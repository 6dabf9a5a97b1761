package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sizedProduct() *Product {
	return &Product{
		Name:      "Paneer Tikka",
		Category:  CategoryVegetarian,
		BasePrice: 249.0,
		Customizations: map[string]CustomizationCategory{
			"serving_size": {
				Enabled: true,
				Options: []CustomizationOption{
					{Name: "Regular", PriceModifier: 0},
					{Name: "Large", PriceModifier: 50},
				},
			},
			"extras": {
				Enabled: true,
				Options: []CustomizationOption{
					{Name: "No Onion", PriceModifier: -10},
				},
			},
		},
		StockQuantity: 10,
		MinStockLevel: 5,
	}
}

func TestProduct_UnitPrice(t *testing.T) {
	product := sizedProduct()

	tests := []struct {
		name      string
		selection map[string]string
		expected  float64
	}{
		{name: "empty selection is base price", selection: nil, expected: 249.0},
		{name: "matched option adds its delta", selection: map[string]string{"serving_size": "Large"}, expected: 299.0},
		{name: "negative delta subtracts", selection: map[string]string{"extras": "No Onion"}, expected: 239.0},
		{name: "deltas combine across categories", selection: map[string]string{"serving_size": "Large", "extras": "No Onion"}, expected: 289.0},
		{name: "unknown category contributes zero", selection: map[string]string{"toppings": "Cheese"}, expected: 249.0},
		{name: "unknown option contributes zero", selection: map[string]string{"serving_size": "Gigantic"}, expected: 249.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, product.UnitPrice(tt.selection), 1e-9)
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	product := sizedProduct()

	product.StockQuantity = 6
	assert.False(t, product.IsLowStock())

	// The threshold itself counts as low.
	product.StockQuantity = 5
	assert.True(t, product.IsLowStock())

	product.StockQuantity = 0
	assert.True(t, product.IsLowStock())
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryVegan.IsValid())
	assert.True(t, CategoryVegetarian.IsValid())
	assert.False(t, Category("seafood").IsValid())
	assert.False(t, Category("").IsValid())
}
