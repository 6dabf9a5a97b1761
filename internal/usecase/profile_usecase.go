package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput defines a delivery address as submitted by the client.
type AddressInput struct {
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Phone      string
}

// UpdateProfileInput defines a partial profile update. Nil fields are left
// unchanged. Only the fields listed here can ever be changed.
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Addresses *[]AddressInput
}

// ProfileUsecase defines the interface for customer profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
