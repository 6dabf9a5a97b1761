package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/http/response"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for customer authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type requestOTPRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type requestOTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	OTP   string `json:"otp" validate:"required"`
}

type verifyOTPResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userPayload `json:"user"`
}

// RequestOTP handles issuing a one-time login code.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req requestOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RequestOTP(c.Request().Context(), &usecase.RequestOTPInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requestOTPResponse{
		Message: output.Message,
		OTP:     output.Code,
	}, "OTP sent successfully")
}

// VerifyOTP handles redeeming a one-time code for a session token.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Email: req.Email,
		Phone: req.Phone,
		Code:  req.OTP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, verifyOTPResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        toUserPayload(output.User),
	}, "Login successful")
}
