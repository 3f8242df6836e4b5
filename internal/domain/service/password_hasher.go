package service

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash generates a hash from the plaintext password
	Hash(password string) (string, error)

	// Verify checks the plaintext password against a stored hash
	Verify(password, hash string) bool
}
