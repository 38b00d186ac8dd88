// Package repository provides data access for the menu catalog.
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

// MenuItemsRepository provides methods for menu catalog operations.
type MenuItemsRepository struct {
	collection *mongo.Collection
}

// NewMenuItemsRepository creates a new menu items repository.
func NewMenuItemsRepository(db *MongoDB) *MenuItemsRepository {
	return &MenuItemsRepository{
		collection: db.MenuItems,
	}
}

// Insert appends a new catalog item.
func (r *MenuItemsRepository) Insert(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID returns the item with the given id, or nil when it does not exist.
func (r *MenuItemsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item with the given id. Missing ids are a no-op;
// schedule entries and orders referencing the id are left untouched.
func (r *MenuItemsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// List returns all catalog items in insertion order.
func (r *MenuItemsRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	items := []model.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of catalog items.
func (r *MenuItemsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
