package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is a one-time numeric login code tied to a contact method.
// A code is consumed (flagged, never deleted) on its first successful
// verification; expired records are ignored by the expiry check rather
// than purged. Issuing a new code does not invalidate earlier ones.
type OTPCode struct {
	ID        uuid.UUID
	Code      string
	Email     string // Contact the code was issued for; may be empty.
	Phone     string // Contact the code was issued for; may be empty.
	Consumed  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the code's validity window has elapsed at the
// given instant.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
