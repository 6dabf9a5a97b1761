package service

// OTPGenerator produces one-time numeric login codes.
type OTPGenerator interface {
	// Generate returns a fixed-length numeric code.
	Generate() (string, error)
}
