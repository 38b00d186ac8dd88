// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/circuitbreaker"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit
// breaker protection. The ledger is the hottest write path: every schedule
// change fans out into order inserts.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new wrapper around repo.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert appends an order with circuit breaker protection. An open circuit
// propagates as an error: the ledger write must not be silently dropped.
func (r *OrdersRepositoryWithCircuitBreaker) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Insert(ctx, order)
		return cbErr
	})
	return result, err
}

// MarkPickedUp flips the pickup flag with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) MarkPickedUp(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.MarkPickedUp(ctx, id)
	})
}

// List returns the ledger with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new wrapper around repo.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. An open circuit fails silently:
// request logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries. An open circuit fails silently.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
