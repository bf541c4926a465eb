package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// AuditRepository appends auth audit events to the store.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService records a single auth event. Implementations are invoked from
// the queue dispatcher workers, never directly from a request handler.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
