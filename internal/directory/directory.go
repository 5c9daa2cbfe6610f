package directory

import (
	"context"
	"errors"

	"github.com/pharmahub/pharma-backend/pkg/db/models"
)

// Sentinel errors returned by both directory variants. Anything else coming
// out of a Directory is a store fault and must be surfaced, never swallowed.
var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("email already registered")
)

// Directory abstracts the user store. Both variants enforce case-insensitive
// email uniqueness and assign ids atomically with insertion.
type Directory interface {
	// FindByEmail looks up a user by email, comparing case-insensitively.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Insert persists the candidate user, assigning its ID. When another user
	// already holds a case-insensitively equal email it returns ErrConflict
	// and leaves the candidate untouched.
	Insert(ctx context.Context, user *models.User) error
}
