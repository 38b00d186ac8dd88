// Package repository provides data access for student preferences.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// PreferencesRepository provides methods for preference storage.
type PreferencesRepository struct {
	collection *mongo.Collection
}

// NewPreferencesRepository creates a new preferences repository.
func NewPreferencesRepository(db *MongoDB) *PreferencesRepository {
	return &PreferencesRepository{
		collection: db.Preferences,
	}
}

// Upsert stores the rule for the student, overwriting any prior rule.
func (r *PreferencesRepository) Upsert(ctx context.Context, studentID, rule string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"student_id": studentID},
		bson.M{"$set": bson.M{"rule": rule}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Get returns the stored preference for the student, or nil when absent.
func (r *PreferencesRepository) Get(ctx context.Context, studentID string) (*model.StudentPreference, error) {
	var pref model.StudentPreference
	err := r.collection.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&pref)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// All returns every stored preference, in student id order for deterministic
// bulk passes.
func (r *PreferencesRepository) All(ctx context.Context) ([]model.StudentPreference, error) {
	opts := options.Find().SetSort(bson.M{"student_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	prefs := []model.StudentPreference{}
	if err := cursor.All(ctx, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
