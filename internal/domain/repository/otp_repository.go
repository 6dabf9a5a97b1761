package repository

import (
	"context"
	"errors"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOTPNotFound is a domain-specific error returned when no matching
// unconsumed code exists.
var ErrOTPNotFound = errors.New("otp code not found")

// OTPRepository defines the operations for one-time code persistence.
// Records are never deleted: consumption flips a flag, expiry is checked by
// the caller.
type OTPRepository interface {
	// Create persists a freshly issued code.
	Create(ctx context.Context, code *entity.OTPCode) error

	// FindUnconsumed retrieves an unconsumed record matching the code and the
	// supplied contact method; empty contact arguments are ignored.
	FindUnconsumed(ctx context.Context, code, email, phone string) (*entity.OTPCode, error)

	// MarkConsumed flips the consumed flag on the record.
	MarkConsumed(ctx context.Context, id uuid.UUID) error
}
