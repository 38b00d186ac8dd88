package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/metrics"
	"github.com/campuskitchen/lunch-service/internal/repository"
)

// LedgerService defines the interface for the append-only order ledger.
type LedgerService interface {
	// RecordOrder appends an order placed directly by a student. The meal
	// name is stored as given and is not checked against the catalog.
	RecordOrder(ctx context.Context, studentID, mealName string) (*model.Order, error)
	// MarkPickedUp flags an order as collected. Unknown ids and already
	// flagged orders are a no-op.
	MarkPickedUp(ctx context.Context, id primitive.ObjectID) error
	// ListOrders returns the full ledger, newest first.
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// LedgerServiceImpl implements LedgerService.
type LedgerServiceImpl struct {
	repo repository.OrdersRepositoryInterface
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repo repository.OrdersRepositoryInterface) LedgerService {
	return &LedgerServiceImpl{repo: repo}
}

// RecordOrder appends a student-placed order to the ledger.
func (s *LedgerServiceImpl) RecordOrder(ctx context.Context, studentID, mealName string) (*model.Order, error) {
	order := &model.Order{
		StudentID: studentID,
		MealName:  mealName,
		Source:    model.SourceStudent,
	}
	inserted, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	metrics.RecordOrder(string(model.SourceStudent))
	return inserted, nil
}

// MarkPickedUp flags an order as collected. Flagging twice, or flagging an
// id that does not exist, succeeds without effect.
func (s *LedgerServiceImpl) MarkPickedUp(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.MarkPickedUp(ctx, id)
}

// ListOrders returns every order, newest first.
func (s *LedgerServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}
