package impl

import (
	"io"
	"log/slog"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dalMakhani builds the catalog fixture used across pricing tests: base 249
// with a free spice level axis and a +50 large serving.
func dalMakhani(id uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Dal Makhani",
		Category:  entity.CategoryVegetarian,
		BasePrice: 249.0,
		IsActive:  true,
		Customizations: map[string]entity.CustomizationCategory{
			"spice_level": {
				Enabled: true,
				Options: []entity.CustomizationOption{
					{Name: "Mild", PriceModifier: 0},
					{Name: "Spicy", PriceModifier: 0},
				},
			},
			"serving_size": {
				Enabled: true,
				Options: []entity.CustomizationOption{
					{Name: "Regular", PriceModifier: 0},
					{Name: "Large", PriceModifier: 50},
				},
			},
		},
		StockQuantity: 50,
		MinStockLevel: 5,
	}
}
