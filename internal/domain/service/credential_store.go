package service

// AdminCredentialStore checks console operator credentials. Implementations
// are read-only: accounts are managed by operators, not through the API.
type AdminCredentialStore interface {
	// Verify reports whether the username exists and the password matches.
	Verify(username, password string) bool

	// Exists reports whether the username is a known operator. Token
	// verification uses this so tokens for removed admins stop working.
	Exists(username string) bool
}
