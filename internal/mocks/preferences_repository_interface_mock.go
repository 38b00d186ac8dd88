// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

type MockPreferencesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPreferencesRepositoryInterface) Upsert(ctx context.Context, studentID, rule string) error {
	args := m.Called(ctx, studentID, rule)
	return args.Error(0)
}

func (m *MockPreferencesRepositoryInterface) Get(ctx context.Context, studentID string) (*model.StudentPreference, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudentPreference), args.Error(1)
}

func (m *MockPreferencesRepositoryInterface) All(ctx context.Context) ([]model.StudentPreference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudentPreference), args.Error(1)
}
