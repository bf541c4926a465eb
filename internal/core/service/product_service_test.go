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

type stubProductRepo struct {
	products []domain.Product
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (string, error) {
	r.products = append(r.products, *product)
	return "product-" + strconv.Itoa(len(r.products)), nil
}

func (r *stubProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:     "Desk Lamp",
		Price:    24.5,
		Currency: "USD",
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected generated product id")
	}
	if product.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	cases := []ports.CreateProductInput{
		{Price: 10},
		{Name: "Desk Lamp"},
		{Name: "Desk Lamp", Price: -1},
	}
	for _, in := range cases {
		if _, err := svc.CreateProduct(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}
