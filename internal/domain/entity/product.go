// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the dietary category of a product.
type Category string

const (
	// CategoryVegan indicates a fully plant-based product.
	CategoryVegan Category = "vegan"
	// CategoryVegetarian indicates a vegetarian product.
	CategoryVegetarian Category = "vegetarian"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryVegan, CategoryVegetarian:
		return true
	default:
		return false
	}
}

// CustomizationOption is a single selectable option inside a customization
// category, carrying a signed price delta applied on top of the base price.
type CustomizationOption struct {
	Name          string  // Display name of the option, e.g. "Large".
	PriceModifier float64 // Signed currency delta applied when selected.
}

// CustomizationCategory is a named axis of product configuration, e.g. "size"
// or "spice level", holding the options a customer can pick from.
type CustomizationCategory struct {
	Enabled bool
	Options []CustomizationOption
}

// Product is a catalog entry. Customizations map a category name to its
// option list; selected options combine additively with the base price.
type Product struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Images          []string // Relative image reference paths.
	Category        Category
	Subcategory     string
	BasePrice       float64
	Customizations  map[string]CustomizationCategory
	IsActive        bool
	StockQuantity   int
	MinStockLevel   int
	PreparationTime int // Estimated preparation time in minutes.
	Tags            []string
	NutritionInfo   map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UnitPrice computes the price of a single unit for the given selection,
// mapping customization category name to the chosen option name.
// Selections that name an unknown category or option contribute zero; an
// empty selection yields exactly the base price. Fractional currency values
// pass through unchanged.
func (p *Product) UnitPrice(selection map[string]string) float64 {
	price := p.BasePrice

	for category, optionName := range selection {
		schema, ok := p.Customizations[category]
		if !ok {
			continue
		}
		for _, opt := range schema.Options {
			if opt.Name == optionName {
				price += opt.PriceModifier

				break
			}
		}
	}

	return price
}

// IsLowStock reports whether the stock count is at or below the configured
// minimum threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}
