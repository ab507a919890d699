package refreshtokens

import (
	"context"
	"time"

	"github.com/medportal/authsvc/internal/server/models"
)

// Repository is the persistence contract for refresh-token rows. The store
// is authoritative for revocation: a token absent here is dead regardless
// of its own embedded expiry.
type Repository interface {
	// Create inserts a new token row for userID expiring at expiresAt.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns the row holding token, only while it is unexpired.
	// Absent or expired rows yield common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Rotate swaps oldToken for newToken in place, conditional on oldToken
	// still being the stored, unexpired value. When a concurrent rotation
	// has already replaced it, common.ErrorNotFound is returned and the
	// caller must treat the presented token as invalid.
	Rotate(ctx context.Context, oldToken string, newToken string, expiresAt time.Time) error

	// Delete removes the row holding token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
