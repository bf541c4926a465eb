package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

const collectionOrders = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collectionOrders)}
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Product   domain.OrderItem   `bson:"product"`
	Pricing   domain.Pricing     `bson:"pricing"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// EnsureIndexes creates the lookup index on the customer email.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}

// Create inserts a new order document and returns its generated ID.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, orderDoc{
		Email:     order.Email,
		Product:   order.Product,
		Pricing:   order.Pricing,
		Notes:     order.Notes,
		CreatedAt: order.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail returns all orders placed under the given customer email.
func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"email": email})
}

// FindAll returns every order in the collection.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, domain.Order{
			ID:        d.ID.Hex(),
			Email:     d.Email,
			Product:   d.Product,
			Pricing:   d.Pricing,
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt,
		})
	}
	return orders, nil
}
