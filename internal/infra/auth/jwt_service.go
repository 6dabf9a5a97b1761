// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kitchen/config"
	"kitchen/internal/domain/service"
	"kitchen/internal/errors"
)

// jwtSigner signs and parses HS256 tokens for one signing domain. Customer
// and admin services each hold their own signer; they share nothing.
type jwtSigner struct {
	secret string
	ttl    time.Duration
}

// sign creates a token whose subject carries the principal's identity.
func (s jwtSigner) sign(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parseSubject validates signature and expiry and returns the subject claim.
func (s jwtSigner) parseSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "failed to read token subject")
	}

	return subject, nil
}

// customerTokenService implements service.CustomerTokenService using JWT.
type customerTokenService struct {
	signer jwtSigner
}

// NewCustomerTokenService is the constructor for customerTokenService.
func NewCustomerTokenService(cfg *config.Config) (service.CustomerTokenService, error) {
	if cfg.SecretKey.Customer == "" {
		return nil, errors.New("customer jwt secret must be provided")
	}

	return &customerTokenService{
		signer: jwtSigner{
			secret: cfg.SecretKey.Customer,
			ttl:    cfg.Auth.CustomerTokenTTL,
		},
	}, nil
}

// Issue creates a signed bearer token embedding the user's identity.
func (s *customerTokenService) Issue(userID uuid.UUID) (string, error) {
	return s.signer.sign(userID.String())
}

// Verify validates the token and returns the embedded user ID.
func (s *customerTokenService) Verify(tokenString string) (uuid.UUID, error) {
	subject, err := s.signer.parseSubject(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid user id in token subject")
	}

	return userID, nil
}

// adminTokenService implements service.AdminTokenService using JWT with its
// own secret and a shorter validity window.
type adminTokenService struct {
	signer jwtSigner
}

// NewAdminTokenService is the constructor for adminTokenService.
func NewAdminTokenService(cfg *config.Config) (service.AdminTokenService, error) {
	if cfg.SecretKey.Admin == "" {
		return nil, errors.New("admin jwt secret must be provided")
	}

	return &adminTokenService{
		signer: jwtSigner{
			secret: cfg.SecretKey.Admin,
			ttl:    cfg.Auth.AdminTokenTTL,
		},
	}, nil
}

// Issue creates a signed bearer token embedding the admin username.
func (s *adminTokenService) Issue(username string) (string, error) {
	return s.signer.sign(username)
}

// Verify validates the token and returns the embedded username.
func (s *adminTokenService) Verify(tokenString string) (string, error) {
	return s.signer.parseSubject(tokenString)
}
