// Package sessions declares the server-side repository contract for login
// sessions in persistent storage.
package sessions

import (
	"context"
	"time"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// session tokens.
type Repository interface {
	// Create stores a new session token for adminID with an expiry of now+validity.
	Create(ctx context.Context, adminID string, token string, validity time.Duration) error

	// Find looks up a session by its opaque token string and returns its metadata.
	// Implementations should return a not-found error when the token is absent.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by its token string. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error
}
