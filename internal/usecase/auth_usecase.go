package usecase

import (
	"context"

	"kitchen/internal/domain/entity"
)

// RequestOTPInput defines the contact method an OTP should be issued for.
// At least one of Email or Phone must be set.
type RequestOTPInput struct {
	Email string
	Phone string
}

// RequestOTPOutput confirms the code was issued. Code is only populated when
// the service runs in debug mode, where no real delivery channel exists.
type RequestOTPOutput struct {
	Message string
	Code    string
}

// VerifyOTPInput defines the data required to redeem an OTP.
type VerifyOTPInput struct {
	Email string
	Phone string
	Code  string
}

// VerifyOTPOutput returns the session token after a successful verification.
type VerifyOTPOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines the interface for passwordless customer authentication.
type AuthUsecase interface {
	RequestOTP(ctx context.Context, input *RequestOTPInput) (*RequestOTPOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*VerifyOTPOutput, error)
}
