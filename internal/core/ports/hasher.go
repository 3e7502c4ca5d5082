package ports

// PasswordHasher produces and verifies one-way password digests.
type PasswordHasher interface {
	// Hash returns a salted digest. Two calls with the same plaintext
	// produce different digests.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. It returns false for
	// malformed digests instead of failing.
	Verify(plaintext, digest string) bool
}
