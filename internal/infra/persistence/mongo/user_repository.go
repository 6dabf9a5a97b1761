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

// userRepository implements the repository.UserRepository interface on the
// users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collectionUsers)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByContact retrieves the account for a verified contact method. Email is
// preferred when both are supplied, so an email-only account is still found
// for a request that also carries a phone number.
func (repo *userRepository) FindByContact(ctx context.Context, email, phone string) (*entity.User, error) {
	query, err := contactQuery(email, phone)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, query).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by contact")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user document.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update replaces an existing user document.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": user.ID.String()}, fromUserDomain(user))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Count returns the total number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	return count, nil
}

// contactQuery selects the lookup key for a contact pair: email when present,
// phone otherwise. The two are never combined.
func contactQuery(email, phone string) (bson.M, error) {
	switch {
	case email != "":
		return bson.M{"email": email}, nil
	case phone != "":
		return bson.M{"phone": phone}, nil
	default:
		return nil, errors.New("at least one of email or phone must be provided")
	}
}

// --- Mapper Functions ---

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	addresses := make([]entity.Address, 0, len(data.Addresses))
	for _, addrM := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addrM))
	}

	return &entity.User{
		ID:        parseID(data.ID),
		Email:     data.Email,
		Phone:     data.Phone,
		Name:      data.Name,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	addresses := make([]model.AddressModel, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, fromAddressDomain(addr))
	}

	return &model.UserModel{
		ID:        data.ID.String(),
		Email:     data.Email,
		Phone:     data.Phone,
		Name:      data.Name,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAddressDomain converts an AddressModel to a domain Address.
func toAddressDomain(data model.AddressModel) entity.Address {
	return entity.Address{
		Label:      data.Label,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
	}
}

// fromAddressDomain converts a domain Address to an AddressModel.
func fromAddressDomain(data entity.Address) model.AddressModel {
	return model.AddressModel{
		Label:      data.Label,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
	}
}
