// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import "github.com/google/uuid"

// CustomerTokenService issues and verifies bearer tokens for customer
// sessions. It is deliberately distinct from AdminTokenService: the two
// signing domains share no secret and no state, so a token from one domain
// can never validate in the other.
type CustomerTokenService interface {
	// Issue creates a signed token embedding the user's identity.
	Issue(userID uuid.UUID) (string, error)

	// Verify validates signature and expiry and returns the embedded user ID.
	Verify(tokenString string) (uuid.UUID, error)
}

// AdminTokenService issues and verifies bearer tokens for the admin console.
type AdminTokenService interface {
	// Issue creates a signed token embedding the admin username.
	Issue(username string) (string, error)

	// Verify validates signature and expiry and returns the embedded username.
	Verify(tokenString string) (string, error)
}
