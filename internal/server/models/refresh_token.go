package models

import "time"

// RefreshToken is a server-side session row. The signed token string is
// stored verbatim; the store, not the token's embedded expiry, is
// authoritative for revocation.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
