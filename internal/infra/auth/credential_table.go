package auth

import (
	"kitchen/config"
	"kitchen/internal/domain/service"
)

// CredentialTable is the fixed admin credential store, loaded once from
// configuration and read-only afterwards. It lives outside the document
// store on purpose: admin accounts are operator-managed, not user data.
type CredentialTable struct {
	hashes map[string]string
	hasher service.PasswordHasher
}

// NewCredentialTable builds the table from the configured admin entries.
func NewCredentialTable(cfg *config.Config, hasher service.PasswordHasher) service.AdminCredentialStore {
	hashes := make(map[string]string, len(cfg.Auth.Admins))
	for _, cred := range cfg.Auth.Admins {
		hashes[cred.Username] = cred.PasswordHash
	}

	return &CredentialTable{
		hashes: hashes,
		hasher: hasher,
	}
}

// Verify reports whether the username exists and the password matches its
// stored hash.
func (t *CredentialTable) Verify(username, password string) bool {
	hash, ok := t.hashes[username]
	if !ok {
		return false
	}

	return t.hasher.Check(password, hash)
}

// Exists reports whether the username is present in the table. Token
// verification uses this so tokens for removed admins stop working.
func (t *CredentialTable) Exists(username string) bool {
	_, ok := t.hashes[username]

	return ok
}
