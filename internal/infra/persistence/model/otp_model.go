package model

import "time"

// OTPModel is the stored form of a one-time code document. The consumed
// flag is persisted as "verified" to match the collection layout.
type OTPModel struct {
	ID        string    `bson:"_id"`
	Code      string    `bson:"otp"`
	Email     string    `bson:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty"`
	Verified  bool      `bson:"verified"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}
