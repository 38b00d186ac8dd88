package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/mocks"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func TestLedgerService_RecordOrder(t *testing.T) {
	t.Run("records a student order", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.StudentID == "42" && o.MealName == "Pizza" && o.Source == model.SourceStudent && !o.PickedUp
		})).Return(&model.Order{
			ID:        primitive.NewObjectID(),
			StudentID: "42",
			MealName:  "Pizza",
			Source:    model.SourceStudent,
			CreatedAt: time.Now(),
		}, nil)

		svc := service.NewLedgerService(mockRepo)
		order, err := svc.RecordOrder(context.Background(), "42", "Pizza")

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, "42", order.StudentID)
		assert.Equal(t, "Pizza", order.MealName)
		assert.Equal(t, model.SourceStudent, order.Source)
		assert.False(t, order.PickedUp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("meal name is stored verbatim", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.MealName == "Mystery Meat"
		})).Return(&model.Order{ID: primitive.NewObjectID(), MealName: "Mystery Meat"}, nil)

		svc := service.NewLedgerService(mockRepo)
		order, err := svc.RecordOrder(context.Background(), "42", "Mystery Meat")

		assert.NoError(t, err)
		assert.Equal(t, "Mystery Meat", order.MealName)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

		svc := service.NewLedgerService(mockRepo)
		order, err := svc.RecordOrder(context.Background(), "42", "Pizza")

		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestLedgerService_MarkPickedUp(t *testing.T) {
	t.Run("marks an order", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		id := primitive.NewObjectID()
		mockRepo.On("MarkPickedUp", mock.Anything, id).Return(nil)

		svc := service.NewLedgerService(mockRepo)
		err := svc.MarkPickedUp(context.Background(), id)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		mockRepo.On("MarkPickedUp", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewLedgerService(mockRepo)
		err := svc.MarkPickedUp(context.Background(), primitive.NewObjectID())

		assert.NoError(t, err)
	})
}

func TestLedgerService_ListOrders(t *testing.T) {
	t.Run("returns orders newest first", func(t *testing.T) {
		mockRepo := new(mocks.MockOrdersRepositoryInterface)
		now := time.Now()
		orders := []model.Order{
			{ID: primitive.NewObjectID(), MealName: "Salad", CreatedAt: now},
			{ID: primitive.NewObjectID(), MealName: "Pizza", CreatedAt: now.Add(-time.Hour)},
		}
		mockRepo.On("List", mock.Anything).Return(orders, nil)

		svc := service.NewLedgerService(mockRepo)
		got, err := svc.ListOrders(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}
