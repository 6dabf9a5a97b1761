package mongo

import (
	"context"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SeedParams defines the required parameters
type SeedParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ProductRepo repository.ProductRepository
}

// SeedCatalog inserts the sample menu when the products collection is empty.
// It is a no-op unless catalog.seedSample is enabled.
func SeedCatalog(ctx context.Context, params SeedParams) error {
	if params.Config.Catalog == nil || !params.Config.Catalog.SeedSample {
		return nil
	}

	count, err := params.ProductRepo.Count(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, product := range sampleCatalog() {
		if err := params.ProductRepo.Create(ctx, product); err != nil {
			return err
		}
	}

	params.Logger.Info("Seeded sample catalog",
		slog.Int("products", len(sampleCatalog())))

	return nil
}

// spiceLevels is shared by most dishes. Levels carry no surcharge.
func spiceLevels() entity.CustomizationCategory {
	return entity.CustomizationCategory{
		Enabled: true,
		Options: []entity.CustomizationOption{
			{Name: "Mild", PriceModifier: 0},
			{Name: "Medium", PriceModifier: 0},
			{Name: "Spicy", PriceModifier: 0},
		},
	}
}

func sampleCatalog() []*entity.Product {
	now := time.Now().UTC()

	newProduct := func(p entity.Product) *entity.Product {
		p.ID = uuid.New()
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now

		return &p
	}

	return []*entity.Product{
		newProduct(entity.Product{
			Name:            "Dal Makhani",
			Description:     "Rich and creamy black lentils slow-cooked with butter, cream, and aromatic spices",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "north-indian",
			BasePrice:       249.0,
			StockQuantity:   50,
			MinStockLevel:   5,
			PreparationTime: 25,
			Tags:            []string{"dal", "lentils", "creamy", "north-indian", "punjabi"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
				"serving_size": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "Regular", PriceModifier: 0},
						{Name: "Large", PriceModifier: 50},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Paneer Butter Masala",
			Description:     "Tender cottage cheese cubes in rich tomato and cashew gravy with aromatic spices",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "north-indian",
			BasePrice:       299.0,
			StockQuantity:   40,
			MinStockLevel:   8,
			PreparationTime: 20,
			Tags:            []string{"paneer", "cottage cheese", "tomato", "north-indian", "punjabi"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
				"paneer_quantity": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "Regular", PriceModifier: 0},
						{Name: "Extra Paneer", PriceModifier: 40},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Chole Bhature",
			Description:     "Spicy chickpea curry served with fluffy deep-fried bread, a classic Punjabi favorite",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "north-indian",
			BasePrice:       199.0,
			StockQuantity:   60,
			MinStockLevel:   10,
			PreparationTime: 15,
			Tags:            []string{"chole", "chickpeas", "bhature", "punjabi", "bread"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
				"bhature_count": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "2 Bhature", PriceModifier: 0},
						{Name: "3 Bhature", PriceModifier: 30},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Masala Dosa",
			Description:     "Crispy rice crepe filled with spiced potato masala, served with sambar and chutneys",
			Category:        entity.CategoryVegan,
			Subcategory:     "south-indian",
			BasePrice:       149.0,
			StockQuantity:   80,
			MinStockLevel:   15,
			PreparationTime: 12,
			Tags:            []string{"dosa", "south-indian", "crispy", "potato", "breakfast"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
				"extra_chutney": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "No", PriceModifier: 0},
						{Name: "Yes", PriceModifier: 20},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Veg Biryani",
			Description:     "Fragrant basmati rice layered with spiced vegetables and saffron, slow-cooked on dum",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "rice",
			BasePrice:       229.0,
			StockQuantity:   45,
			MinStockLevel:   8,
			PreparationTime: 30,
			Tags:            []string{"biryani", "rice", "basmati", "saffron"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
				"raita": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "No Raita", PriceModifier: 0},
						{Name: "With Raita", PriceModifier: 35},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Lemon Rice",
			Description:     "Aromatic rice tempered with mustard seeds, curry leaves, and fresh lemon juice",
			Category:        entity.CategoryVegan,
			Subcategory:     "rice",
			BasePrice:       129.0,
			StockQuantity:   70,
			MinStockLevel:   12,
			PreparationTime: 10,
			Tags:            []string{"rice", "lemon", "south-indian", "tangy"},
			Customizations: map[string]entity.CustomizationCategory{
				"spice_level": spiceLevels(),
			},
		}),
		newProduct(entity.Product{
			Name:            "Gulab Jamun",
			Description:     "Soft milk dumplings soaked in cardamom-scented sugar syrup, served warm",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "desserts",
			BasePrice:       99.0,
			StockQuantity:   100,
			MinStockLevel:   20,
			PreparationTime: 5,
			Tags:            []string{"dessert", "sweet", "gulab jamun"},
			Customizations: map[string]entity.CustomizationCategory{
				"pieces": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "2 Pieces", PriceModifier: 0},
						{Name: "4 Pieces", PriceModifier: 80},
					},
				},
			},
		}),
		newProduct(entity.Product{
			Name:            "Masala Chai",
			Description:     "Traditional spiced tea brewed with ginger, cardamom, and fresh milk",
			Category:        entity.CategoryVegetarian,
			Subcategory:     "beverages",
			BasePrice:       49.0,
			StockQuantity:   200,
			MinStockLevel:   30,
			PreparationTime: 5,
			Tags:            []string{"chai", "tea", "beverage", "hot"},
			Customizations: map[string]entity.CustomizationCategory{
				"size": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "Regular", PriceModifier: 0},
						{Name: "Large", PriceModifier: 20},
					},
				},
				"sugar": {
					Enabled: true,
					Options: []entity.CustomizationOption{
						{Name: "Regular", PriceModifier: 0},
						{Name: "Less Sugar", PriceModifier: 0},
						{Name: "No Sugar", PriceModifier: 0},
					},
				},
			},
		}),
	}
}
