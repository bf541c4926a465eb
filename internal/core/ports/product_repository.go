package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// ProductRepository persists catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (string, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}
