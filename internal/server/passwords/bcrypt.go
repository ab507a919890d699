// Package passwords wraps bcrypt hashing and verification of account
// passwords. The salt and work factor are encoded in the hash itself.
package passwords

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the work factor used when none is configured. Tuned so a
// single hash takes tens of milliseconds.
const DefaultCost = 12

// Hasher hashes and verifies plaintext passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost, clamped to bcrypt's
// supported range. A non-positive cost falls back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. The plaintext is never logged or
// stored.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash. A malformed hash
// also yields false; callers must not be able to distinguish the two cases.
func (h *Hasher) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
