package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// AccountRepository is the credential store: it owns Account records.
// Create must enforce email uniqueness and return domain.ErrAccountExists on
// a duplicate, so concurrent registrations cannot both succeed.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
