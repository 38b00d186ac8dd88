// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// TxRunner runs a function within a storage transaction. Implementations
// that cannot provide transactions run the function directly.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoTxRunner is a TxRunner that executes the function without a transaction.
// Used with standalone mongod deployments and in unit tests.
type NoTxRunner struct{}

// RunInTransaction executes fn directly.
func (NoTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MenuItemsRepositoryInterface defines catalog storage operations.
type MenuItemsRepositoryInterface interface {
	// Insert appends a new catalog item and returns it with its id set.
	Insert(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	// FindByID returns the item, or nil without error when it does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	// Delete removes the item. Deleting a missing id is a no-op, not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// List returns all items in insertion order.
	List(ctx context.Context) ([]model.MenuItem, error)
	// Count returns the number of catalog items.
	Count(ctx context.Context) (int64, error)
}

// ScheduleRepositoryInterface defines daily schedule storage operations.
type ScheduleRepositoryInterface interface {
	// Insert appends a schedule entry. Duplicate (date, item) pairs are allowed.
	Insert(ctx context.Context, date string, menuItemID primitive.ObjectID) (*model.ScheduleEntry, error)
	// ItemsForDate joins the date's entries with the catalog, in entry
	// insertion order. Entries whose item has been deleted are omitted.
	ItemsForDate(ctx context.Context, date string) ([]model.MenuItem, error)
	// ListAll returns every entry joined with its item, ordered by date ascending.
	ListAll(ctx context.Context) ([]model.ScheduledMeal, error)
}

// PreferencesRepositoryInterface defines preference storage operations.
type PreferencesRepositoryInterface interface {
	// Upsert stores the rule for the student, replacing any prior rule.
	Upsert(ctx context.Context, studentID, rule string) error
	// Get returns the stored preference, or nil without error when absent.
	Get(ctx context.Context, studentID string) (*model.StudentPreference, error)
	// All returns every stored preference.
	All(ctx context.Context) ([]model.StudentPreference, error)
}

// OrdersRepositoryInterface defines order ledger storage operations.
type OrdersRepositoryInterface interface {
	// Insert appends an order and returns it with id and timestamp set.
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	// MarkPickedUp sets picked_up to true. Idempotent; a missing id is a no-op.
	MarkPickedUp(ctx context.Context, id primitive.ObjectID) error
	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
}

// LogsRepositoryInterface defines request log storage operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
