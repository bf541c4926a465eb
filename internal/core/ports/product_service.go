package ports

import (
	"context"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// CreateProductInput carries a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	InStock     bool
}

// ProductService defines the catalog use cases.
type ProductService interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
