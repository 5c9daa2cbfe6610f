package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pharmahub/pharma-backend/pkg/db/models"
)

// Ephemeral is the in-process Directory variant used when no database is
// configured. Records live until the process exits. The map and id counter
// are the only shared mutable state in the service; every mutation happens
// inside the write lock so a check-then-insert pair is atomic.
type Ephemeral struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	nextID  uint
}

// NewEphemeral returns an empty in-memory directory.
func NewEphemeral() *Ephemeral {
	return &Ephemeral{
		byEmail: make(map[string]*models.User),
		nextID:  1,
	}
}

func (e *Ephemeral) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	// Hand out a copy so callers never observe later map mutations.
	snapshot := *user
	return &snapshot, nil
}

func (e *Ephemeral) Insert(ctx context.Context, user *models.User) error {
	key := strings.ToLower(user.Email)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byEmail[key]; exists {
		return ErrConflict
	}

	// The counter only advances for winning inserts, under the same lock that
	// publishes the record, so ids are unique and losers never consume one.
	user.ID = e.nextID
	e.nextID++

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	e.byEmail[key] = &stored
	return nil
}

// Len reports the number of stored users.
func (e *Ephemeral) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.byEmail)
}
