package ports

import "context"

// LoginThrottle limits failed login attempts per email. Implementations are
// best-effort; callers log backend errors and treat them as not blocked.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
