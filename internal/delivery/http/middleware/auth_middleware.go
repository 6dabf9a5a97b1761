package middleware

import (
	"strings"

	"kitchen/internal/delivery/http/response"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Context keys set by the auth middleware for handlers to read.
const (
	// KeyUserID holds the authenticated customer's uuid.UUID.
	KeyUserID = "userID"

	// KeyAdminUsername holds the authenticated console operator's username.
	KeyAdminUsername = "adminUsername"
)

// AuthMiddleware provides middleware for customer and console authentication.
// The two token domains are verified independently: a customer token never
// authorizes a console route and vice versa.
type AuthMiddleware struct {
	customerTokens service.CustomerTokenService
	adminTokens    service.AdminTokenService
	credentials    service.AdminCredentialStore
	userRepo       repository.UserRepository
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	CustomerTokens service.CustomerTokenService
	AdminTokens    service.AdminTokenService
	Credentials    service.AdminCredentialStore
	UserRepo       repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		customerTokens: params.CustomerTokens,
		adminTokens:    params.AdminTokens,
		credentials:    params.Credentials,
		userRepo:       params.UserRepo,
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", false
	}

	return tokenString, true
}

// AuthenticateCustomer validates a customer session token and loads the
// account. Tokens for since-deleted accounts are rejected.
func (m *AuthMiddleware) AuthenticateCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "TOKEN_INVALID", "Missing or malformed Authorization header")
		}

		userID, err := m.customerTokens.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "TOKEN_INVALID", "User not found")
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		c.Set(KeyUserID, user.ID)

		return next(c)
	}
}

// AuthenticateAdmin validates a console session token. The username must
// still exist in the credential table, so removing an operator immediately
// invalidates their outstanding tokens.
func (m *AuthMiddleware) AuthenticateAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "TOKEN_INVALID", "Missing or malformed Authorization header")
		}

		username, err := m.adminTokens.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid admin token")
		}

		if !m.credentials.Exists(username) {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid admin token")
		}

		c.Set(KeyAdminUsername, username)

		return next(c)
	}
}
