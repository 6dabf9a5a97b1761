package mongo

import (
	"context"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the repository.ProductRepository interface
// on the products collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(collectionProducts)}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the filter.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, productQuery(filter))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	var productMs []model.ProductModel
	if err := cursor.All(ctx, &productMs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Create persists a new product document.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.coll.InsertOne(ctx, fromProductDomain(product)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update replaces an existing product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": product.ID.String()}, fromProductDomain(product))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product document.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Count returns the number of products matching the filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, productQuery(filter))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

// ListLowStock retrieves products whose stock count is at or below their
// configured minimum threshold.
func (repo *productRepository) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := bson.M{"$expr": bson.M{"$lte": bson.A{"$stock_quantity", "$min_stock_level"}}}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list low stock products")
	}

	var productMs []model.ProductModel
	if err := cursor.All(ctx, &productMs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode low stock products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// productQuery builds the bson filter for a ProductFilter.
func productQuery(filter repository.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = filter.Category.String()
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}

	return query
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	customizations := make(map[string]entity.CustomizationCategory, len(data.Customizations))
	for name, categoryM := range data.Customizations {
		options := make([]entity.CustomizationOption, 0, len(categoryM.Options))
		for _, optM := range categoryM.Options {
			options = append(options, entity.CustomizationOption{
				Name:          optM.Name,
				PriceModifier: optM.PriceModifier,
			})
		}
		customizations[name] = entity.CustomizationCategory{
			Enabled: categoryM.Enabled,
			Options: options,
		}
	}

	return &entity.Product{
		ID:              parseID(data.ID),
		Name:            data.Name,
		Description:     data.Description,
		Images:          data.Images,
		Category:        entity.Category(data.Category),
		Subcategory:     data.Subcategory,
		BasePrice:       data.BasePrice,
		Customizations:  customizations,
		IsActive:        data.IsActive,
		StockQuantity:   data.StockQuantity,
		MinStockLevel:   data.MinStockLevel,
		PreparationTime: data.PreparationTime,
		Tags:            data.Tags,
		NutritionInfo:   data.NutritionInfo,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	customizations := make(map[string]model.CustomizationCategoryModel, len(data.Customizations))
	for name, category := range data.Customizations {
		options := make([]model.CustomizationOptionModel, 0, len(category.Options))
		for _, opt := range category.Options {
			options = append(options, model.CustomizationOptionModel{
				Name:          opt.Name,
				PriceModifier: opt.PriceModifier,
			})
		}
		customizations[name] = model.CustomizationCategoryModel{
			Enabled: category.Enabled,
			Options: options,
		}
	}

	return &model.ProductModel{
		ID:              data.ID.String(),
		Name:            data.Name,
		Description:     data.Description,
		Images:          data.Images,
		Category:        data.Category.String(),
		Subcategory:     data.Subcategory,
		BasePrice:       data.BasePrice,
		Customizations:  customizations,
		IsActive:        data.IsActive,
		StockQuantity:   data.StockQuantity,
		MinStockLevel:   data.MinStockLevel,
		PreparationTime: data.PreparationTime,
		Tags:            data.Tags,
		NutritionInfo:   data.NutritionInfo,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
