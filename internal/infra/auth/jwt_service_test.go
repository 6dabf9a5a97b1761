package auth

import (
	"testing"
	"time"

	"kitchen/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{
		CustomerTokenTTL: 24 * time.Hour,
		AdminTokenTTL:    8 * time.Hour,
	}}
	cfg.SecretKey.Customer = "customer-test-secret"
	cfg.SecretKey.Admin = "admin-test-secret"

	return cfg
}

func TestCustomerTokenService_RoundTrip(t *testing.T) {
	service, err := NewCustomerTokenService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := service.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestCustomerTokenService_RejectsGarbage(t *testing.T) {
	service, err := NewCustomerTokenService(testConfig())
	require.NoError(t, err)

	_, err = service.Verify("not.a.token")
	assert.Error(t, err)
}

func TestCustomerTokenService_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.CustomerTokenTTL = -time.Minute

	service, err := NewCustomerTokenService(cfg)
	require.NoError(t, err)

	token, err := service.Issue(uuid.New())
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

func TestCustomerTokenService_RequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.Customer = ""

	_, err := NewCustomerTokenService(cfg)
	assert.Error(t, err)
}

func TestAdminTokenService_RoundTrip(t *testing.T) {
	service, err := NewAdminTokenService(testConfig())
	require.NoError(t, err)

	token, err := service.Issue("admin")
	require.NoError(t, err)

	username, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestTokenServices_SecretsAreNotInterchangeable(t *testing.T) {
	cfg := testConfig()
	customers, err := NewCustomerTokenService(cfg)
	require.NoError(t, err)
	admins, err := NewAdminTokenService(cfg)
	require.NoError(t, err)

	customerToken, err := customers.Issue(uuid.New())
	require.NoError(t, err)

	// A customer token must never open the admin console.
	_, err = admins.Verify(customerToken)
	assert.Error(t, err)

	adminToken, err := admins.Issue("admin")
	require.NoError(t, err)

	_, err = customers.Verify(adminToken)
	assert.Error(t, err)
}
