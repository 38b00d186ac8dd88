// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

type MockScheduleRepositoryInterface struct {
	mock.Mock
}

func (m *MockScheduleRepositoryInterface) Insert(ctx context.Context, date string, menuItemID primitive.ObjectID) (*model.ScheduleEntry, error) {
	args := m.Called(ctx, date, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepositoryInterface) ItemsForDate(ctx context.Context, date string) ([]model.MenuItem, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockScheduleRepositoryInterface) ListAll(ctx context.Context) ([]model.ScheduledMeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScheduledMeal), args.Error(1)
}
