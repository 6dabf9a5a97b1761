package mongo

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface on the
// orders collection.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(collectionOrders)}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&orderM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves all orders owned by the given user.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, bson.M{"user_id": userID.String()}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// List retrieves orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["order_status"] = filter.Status.String()
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	return repo.find(ctx, query, opts)
}

// Create persists a new order document.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := repo.coll.InsertOne(ctx, fromOrderDomain(order)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// UpdateStatus sets the order status and bumps the modification timestamp.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	update := bson.M{"$set": bson.M{
		"order_status": status.String(),
		"updated_at":   time.Now().UTC(),
	}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*entity.Order, error) {
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	var orderMs []model.OrderModel
	if err := cursor.All(ctx, &orderMs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts an OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ProductID:       parseID(itemM.ProductID),
			Quantity:        itemM.Quantity,
			Customizations:  itemM.Customizations,
			CalculatedPrice: itemM.CalculatedPrice,
		})
	}

	return &entity.Order{
		ID:              parseID(data.ID),
		UserID:          parseID(data.UserID),
		Items:           items,
		TotalAmount:     data.TotalAmount,
		DeliveryAddress: toAddressDomain(data.DeliveryAddress),
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   data.PaymentStatus,
		OrderStatus:     entity.OrderStatus(data.OrderStatus),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to an OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CartItemModel{
			ProductID:       item.ProductID.String(),
			Quantity:        item.Quantity,
			Customizations:  item.Customizations,
			CalculatedPrice: item.CalculatedPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID.String(),
		UserID:          data.UserID.String(),
		Items:           items,
		TotalAmount:     data.TotalAmount,
		DeliveryAddress: fromAddressDomain(data.DeliveryAddress),
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   data.PaymentStatus,
		OrderStatus:     data.OrderStatus.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
