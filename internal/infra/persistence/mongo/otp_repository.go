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

// otpRepository implements the repository.OTPRepository interface on the
// otp_codes collection.
type otpRepository struct {
	coll *mongo.Collection
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *mongo.Database) repository.OTPRepository {
	return &otpRepository{coll: db.Collection(collectionOTPCodes)}
}

// Create persists a freshly issued code.
func (repo *otpRepository) Create(ctx context.Context, code *entity.OTPCode) error {
	if _, err := repo.coll.InsertOne(ctx, fromOTPDomain(code)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp code")
	}

	return nil
}

// FindUnconsumed retrieves an unconsumed record matching the code and the
// supplied contact method. Expiry is checked by the caller, not here.
func (repo *otpRepository) FindUnconsumed(ctx context.Context, code, email, phone string) (*entity.OTPCode, error) {
	query := bson.M{"otp": code, "verified": false}
	if email != "" {
		query["email"] = email
	}
	if phone != "" {
		query["phone"] = phone
	}

	var otpM model.OTPModel
	if err := repo.coll.FindOne(ctx, query).Decode(&otpM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp code")
	}

	return toOTPDomain(&otpM), nil
}

// MarkConsumed flips the consumed flag on the record. The record itself is
// kept: expired and consumed codes are ignored, never purged.
func (repo *otpRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	update := bson.M{"$set": bson.M{"verified": true}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark otp consumed")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOTPDomain converts an OTPModel to a domain OTPCode entity.
func toOTPDomain(data *model.OTPModel) *entity.OTPCode {
	if data == nil {
		return nil
	}

	return &entity.OTPCode{
		ID:        parseID(data.ID),
		Code:      data.Code,
		Email:     data.Email,
		Phone:     data.Phone,
		Consumed:  data.Verified,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromOTPDomain converts a domain OTPCode entity to an OTPModel for persistence.
func fromOTPDomain(data *entity.OTPCode) *model.OTPModel {
	if data == nil {
		return nil
	}

	return &model.OTPModel{
		ID:        data.ID.String(),
		Code:      data.Code,
		Email:     data.Email,
		Phone:     data.Phone,
		Verified:  data.Consumed,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
