package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// CreateOrder validates and persists a new order. Product and a positive
// pricing amount are required.
func (s *OrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*ports.OrderResult, error) {
	if in.Product.Name == "" || in.Pricing.Amount <= 0 {
		return nil, domain.ErrValidation
	}

	order := &domain.Order{
		Email:   in.Email,
		Product: in.Product,
		Pricing: in.Pricing,
		Notes:   in.Notes,
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("order_id", id).Str("email", in.Email).Msg("order created")
	return &ports.OrderResult{OrderID: id, CreatedAt: order.CreatedAt}, nil
}

// ListByEmail returns the orders placed under a customer email.
func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	if email == "" {
		return nil, domain.ErrValidation
	}
	return s.repo.FindByEmail(ctx, email)
}

// ListAll returns every order. Role gating happens in the middleware chain.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}
