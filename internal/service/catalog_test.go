package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/mocks"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func TestCatalogService_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		item          model.MenuItem
		setupMock     func(*mocks.MockMenuItemsRepositoryInterface)
		expectedError error
	}{
		{
			name: "successful add",
			item: model.MenuItem{Name: "Pasta", Calories: 400, Protein: 14},
			setupMock: func(m *mocks.MockMenuItemsRepositoryInterface) {
				inserted := &model.MenuItem{ID: primitive.NewObjectID(), Name: "Pasta", Calories: 400, Protein: 14}
				m.On("Insert", mock.Anything, mock.AnythingOfType("*model.MenuItem")).Return(inserted, nil)
			},
		},
		{
			name: "repository error",
			item: model.MenuItem{Name: "Pasta"},
			setupMock: func(m *mocks.MockMenuItemsRepositoryInterface) {
				m.On("Insert", mock.Anything, mock.AnythingOfType("*model.MenuItem")).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
			tt.setupMock(mockRepo)

			svc := service.NewCatalogService(mockRepo)
			item, err := svc.AddItem(context.Background(), tt.item)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
				assert.False(t, item.ID.IsZero())
				assert.Equal(t, tt.item.Name, item.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_DeleteItem(t *testing.T) {
	t.Run("delete is a pass-through", func(t *testing.T) {
		mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
		id := primitive.NewObjectID()
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		svc := service.NewCatalogService(mockRepo)
		err := svc.DeleteItem(context.Background(), id)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ListItems(t *testing.T) {
	t.Run("returns items in stored order", func(t *testing.T) {
		mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
		items := []model.MenuItem{
			{ID: primitive.NewObjectID(), Name: "Pizza"},
			{ID: primitive.NewObjectID(), Name: "Burger"},
		}
		mockRepo.On("List", mock.Anything).Return(items, nil)

		svc := service.NewCatalogService(mockRepo)
		got, err := svc.ListItems(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, items, got)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_Seed(t *testing.T) {
	t.Run("seeds defaults into an empty catalog", func(t *testing.T) {
		mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
		mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.MenuItem")).
			Return(&model.MenuItem{ID: primitive.NewObjectID()}, nil).
			Times(len(model.DefaultMenuItems))

		svc := service.NewCatalogService(mockRepo)
		err := svc.Seed(context.Background())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("leaves a populated catalog untouched", func(t *testing.T) {
		mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
		mockRepo.On("Count", mock.Anything).Return(int64(5), nil)

		svc := service.NewCatalogService(mockRepo)
		err := svc.Seed(context.Background())

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("propagates count error", func(t *testing.T) {
		mockRepo := new(mocks.MockMenuItemsRepositoryInterface)
		mockRepo.On("Count", mock.Anything).Return(int64(0), errors.New("database error"))

		svc := service.NewCatalogService(mockRepo)
		err := svc.Seed(context.Background())

		assert.Error(t, err)
	})
}
