// Package model contains the persistence representations of the domain
// entities. Field names match the stored document layout.
package model

import "time"

// CustomizationOptionModel is the stored form of a customization option.
type CustomizationOptionModel struct {
	Name          string  `bson:"name"`
	PriceModifier float64 `bson:"price_modifier"`
}

// CustomizationCategoryModel is the stored form of a customization category.
type CustomizationCategoryModel struct {
	Enabled bool                       `bson:"enabled"`
	Options []CustomizationOptionModel `bson:"options"`
}

// ProductModel is the stored form of a product document.
type ProductModel struct {
	ID              string                                `bson:"_id"`
	Name            string                                `bson:"name"`
	Description     string                                `bson:"description"`
	Images          []string                              `bson:"images"`
	Category        string                                `bson:"category"`
	Subcategory     string                                `bson:"subcategory"`
	BasePrice       float64                               `bson:"base_price"`
	Customizations  map[string]CustomizationCategoryModel `bson:"customization_options"`
	IsActive        bool                                  `bson:"is_active"`
	StockQuantity   int                                   `bson:"stock_quantity"`
	MinStockLevel   int                                   `bson:"min_stock_level"`
	PreparationTime int                                   `bson:"preparation_time"`
	Tags            []string                              `bson:"tags"`
	NutritionInfo   map[string]any                        `bson:"nutrition_info,omitempty"`
	CreatedAt       time.Time                             `bson:"created_at"`
	UpdatedAt       time.Time                             `bson:"updated_at"`
}
