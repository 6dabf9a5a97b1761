package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/http/middleware"
	"kitchen/internal/delivery/http/response"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for customer profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	Name      *string           `json:"name"`
	Email     *string           `json:"email"`
	Phone     *string           `json:"phone"`
	Addresses *[]addressPayload `json:"addresses"`
}

// authenticatedUserID reads the user ID set by the customer auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)

	return userID, ok
}

// GetMe handles fetching the authenticated customer's profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Not authenticated")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserPayload(user), "Profile retrieved successfully")
}

// UpdateMe handles a partial update of the authenticated customer's profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Not authenticated")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	input := &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Addresses != nil {
		addresses := make([]usecase.AddressInput, 0, len(*req.Addresses))
		for _, addr := range *req.Addresses {
			addresses = append(addresses, fromAddressPayload(addr))
		}
		input.Addresses = &addresses
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserPayload(user), "Profile updated successfully")
}
