// Package otp implements one-time code generation.
package otp

import (
	"crypto/rand"
	"math/big"

	"kitchen/config"
	"kitchen/internal/domain/service"
	"kitchen/internal/errors"
)

// generator produces fixed-length numeric codes from crypto/rand.
type generator struct {
	length int
}

// NewGenerator is the constructor for generator.
func NewGenerator(cfg *config.Config) service.OTPGenerator {
	return &generator{length: cfg.Auth.OTPLength}
}

// Generate returns a numeric code of the configured length. Leading zeros
// are allowed; every digit is drawn independently.
func (g *generator) Generate() (string, error) {
	digits := make([]byte, g.length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
