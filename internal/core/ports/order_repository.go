package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// OrderRepository persists customer orders in the document store.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}
