package auth

import (
	"testing"

	"kitchen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentialTable(t *testing.T) *CredentialTable {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cfg.Auth.Admins = []config.AdminCredential{
		{Username: "admin", PasswordHash: hash},
	}

	table, ok := NewCredentialTable(cfg, hasher).(*CredentialTable)
	require.True(t, ok)

	return table
}

func TestCredentialTable_Verify(t *testing.T) {
	table := testCredentialTable(t)

	assert.True(t, table.Verify("admin", "secret"))
	assert.False(t, table.Verify("admin", "wrong"))
	assert.False(t, table.Verify("ghost", "secret"))
}

func TestCredentialTable_Exists(t *testing.T) {
	table := testCredentialTable(t)

	assert.True(t, table.Exists("admin"))
	assert.False(t, table.Exists("ghost"))
}
