package ports

import (
	"context"
	"time"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

// CreateOrderInput carries the payload of a new order. Product and Pricing
// are required; everything else is optional.
type CreateOrderInput struct {
	Email   string
	Product domain.OrderItem
	Pricing domain.Pricing
	Notes   string
}

// OrderResult acknowledges a created order.
type OrderResult struct {
	OrderID   string
	CreatedAt time.Time
}

// OrderService defines the order use cases.
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderResult, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	// ListAll returns every order; callers must gate it behind the admin role.
	ListAll(ctx context.Context) ([]domain.Order, error)
}
