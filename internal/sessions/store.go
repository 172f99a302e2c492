package sessions

import (
	"context"
	"time"
)

// Store persists sessions server-side. Lookups of expired sessions return
// ErrNotFound; implementations may also remove the stale row.
type Store interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (Session, error)
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
