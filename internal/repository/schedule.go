// Package repository provides data access for the daily schedule.
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

// ScheduleRepository provides methods for daily schedule operations.
// Entries are append-only; there is no delete path.
type ScheduleRepository struct {
	entries   *mongo.Collection
	menuItems *mongo.Collection
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *MongoDB) *ScheduleRepository {
	return &ScheduleRepository{
		entries:   db.Schedule,
		menuItems: db.MenuItems,
	}
}

// Insert appends a schedule entry. No uniqueness constraint: scheduling the
// same item twice for a date yields two entries.
func (r *ScheduleRepository) Insert(ctx context.Context, date string, menuItemID primitive.ObjectID) (*model.ScheduleEntry, error) {
	entry := &model.ScheduleEntry{
		ID:         primitive.NewObjectID(),
		Date:       date,
		MenuItemID: menuItemID,
		CreatedAt:  time.Now(),
	}

	if _, err := r.entries.InsertOne(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ItemsForDate returns the date's scheduled items in entry insertion order.
// Entries pointing at a deleted catalog item are silently omitted; an empty
// slice means nothing is scheduled.
func (r *ScheduleRepository) ItemsForDate(ctx context.Context, date string) ([]model.MenuItem, error) {
	entries, err := r.entriesForFilter(ctx, bson.M{"date": date}, bson.M{"_id": 1})
	if err != nil {
		return nil, err
	}

	itemsByID, err := r.itemsByID(ctx, entries)
	if err != nil {
		return nil, err
	}

	items := []model.MenuItem{}
	for _, entry := range entries {
		if item, ok := itemsByID[entry.MenuItemID]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// ListAll returns every entry joined with its catalog item, ordered by date
// ascending for the administrator's schedule overview.
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]model.ScheduledMeal, error) {
	entries, err := r.entriesForFilter(ctx, bson.M{}, bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if err != nil {
		return nil, err
	}

	itemsByID, err := r.itemsByID(ctx, entries)
	if err != nil {
		return nil, err
	}

	meals := []model.ScheduledMeal{}
	for _, entry := range entries {
		if item, ok := itemsByID[entry.MenuItemID]; ok {
			meals = append(meals, model.ScheduledMeal{Date: entry.Date, Item: item})
		}
	}
	return meals, nil
}

// entriesForFilter loads schedule entries matching filter with the given sort.
func (r *ScheduleRepository) entriesForFilter(ctx context.Context, filter, sort interface{}) ([]model.ScheduleEntry, error) {
	cursor, err := r.entries.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []model.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// itemsByID fetches the catalog items referenced by entries in one query.
func (r *ScheduleRepository) itemsByID(ctx context.Context, entries []model.ScheduleEntry) (map[primitive.ObjectID]model.MenuItem, error) {
	if len(entries) == 0 {
		return map[primitive.ObjectID]model.MenuItem{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	seen := make(map[primitive.ObjectID]bool, len(entries))
	for _, entry := range entries {
		if !seen[entry.MenuItemID] {
			seen[entry.MenuItemID] = true
			ids = append(ids, entry.MenuItemID)
		}
	}

	cursor, err := r.menuItems.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]model.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}
