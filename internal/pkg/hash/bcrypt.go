// Package hash provides the bcrypt-backed password hasher used for all
// stored credentials.
package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes and verifies passwords with bcrypt. The zero cost falls back
// to bcrypt.DefaultCost.
type Bcrypt struct {
	cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// NewBcryptWithCost builds a hasher with an explicit cost. Costs outside the
// bcrypt range are clamped to the default.
func NewBcryptWithCost(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns a salted digest of plaintext. Each call salts independently,
// so identical inputs yield distinct digests.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Malformed digests and
// mismatches both return false; user-supplied garbage never surfaces as an
// error.
func (b *Bcrypt) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
