package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	r.orders = append(r.orders, *order)
	return "order-" + strconv.Itoa(len(r.orders)), nil
}

func (r *stubOrderRepo) FindByEmail(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindAll(context.Context) ([]domain.Order, error) {
	return r.orders, nil
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	result, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Email:   "a@x.com",
		Product: domain.OrderItem{Name: "Lamp", Quantity: 2},
		Pricing: domain.Pricing{Amount: 40, Currency: "USD"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.OrderID == "" {
		t.Fatalf("expected an order id")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected one persisted order")
	}
}

func TestOrderService_CreateOrder_RequiresProductAndPricing(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Email:   "a@x.com",
		Pricing: domain.Pricing{Amount: 40},
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing product, got %v", err)
	}

	if _, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Email:   "a@x.com",
		Product: domain.OrderItem{Name: "Lamp"},
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing pricing, got %v", err)
	}
}

func TestOrderService_ListByEmail(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{Email: "a@x.com"},
		{Email: "b@x.com"},
		{Email: "a@x.com"},
	}}
	svc := NewOrderService(repo, zerolog.Nop())

	orders, err := svc.ListByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	if _, err := svc.ListByEmail(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}
}
