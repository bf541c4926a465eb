package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Pricing captures the amount charged for an order.
type Pricing struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

// OrderItem is the product snapshot embedded in an order.
type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	SKU      string `json:"sku,omitempty" bson:"sku,omitempty"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Order is a customer purchase. Orders are keyed by the customer email so the
// storefront can list a customer's own orders without an account relation.
type Order struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Product   OrderItem `json:"product" bson:"product"`
	Pricing   Pricing   `json:"pricing" bson:"pricing"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
