// Package repository provides data access for the order ledger.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// OrdersRepository provides methods for the append-only order ledger.
// Orders are never deleted; the only mutation is the one-way pickup flag.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Insert appends an order to the ledger.
func (r *OrdersRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// MarkPickedUp flips picked_up to true. Marking an already-picked-up or
// missing order matches zero documents and is not an error.
func (r *OrdersRepository) MarkPickedUp(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"picked_up": true}},
	)
	return err
}

// List returns all orders ordered by creation time descending, newest
// first. The admin view and read API rely on this exact ordering.
func (r *OrdersRepository) List(ctx context.Context) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
