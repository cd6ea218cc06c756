package ports

import (
	"context"
	"time"
)

type LockoutState struct {
	FailedCount int
	LockedUntil *time.Time
}

// LockoutStore tracks consecutive failed logins per identifier. Backed by
// Redis in production; a nil store disables lockout entirely.
type LockoutStore interface {
	Get(ctx context.Context, key string) (LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (LockoutState, error)
	Clear(ctx context.Context, key string) error
}
