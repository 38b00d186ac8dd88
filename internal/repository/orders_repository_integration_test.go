//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

func TestOrdersRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewOrdersRepository(db)

	t.Run("list when empty", func(t *testing.T) {
		orders, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("insert assigns id and timestamp", func(t *testing.T) {
		order, err := repo.Insert(ctx, &model.Order{
			StudentID: "42",
			MealName:  "Pizza",
			Source:    model.SourceStudent,
		})
		require.NoError(t, err)
		assert.False(t, order.ID.IsZero())
		assert.False(t, order.CreatedAt.IsZero())
		assert.False(t, order.PickedUp)
	})

	t.Run("list newest first", func(t *testing.T) {
		older, err := repo.Insert(ctx, &model.Order{StudentID: "17", MealName: "Salad", Source: model.SourcePreorder})
		require.NoError(t, err)
		newer, err := repo.Insert(ctx, &model.Order{StudentID: "99", MealName: "Burger", Source: model.SourceStudent})
		require.NoError(t, err)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(orders), 2)

		indexOf := func(id primitive.ObjectID) int {
			for i, order := range orders {
				if order.ID == id {
					return i
				}
			}
			return -1
		}
		assert.Less(t, indexOf(newer.ID), indexOf(older.ID))
	})

	t.Run("mark picked up", func(t *testing.T) {
		order, err := repo.Insert(ctx, &model.Order{StudentID: "42", MealName: "Soup", Source: model.SourceStudent})
		require.NoError(t, err)

		require.NoError(t, repo.MarkPickedUp(ctx, order.ID))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		for _, got := range orders {
			if got.ID == order.ID {
				assert.True(t, got.PickedUp)
			}
		}
	})

	t.Run("mark picked up twice is a no-op", func(t *testing.T) {
		order, err := repo.Insert(ctx, &model.Order{StudentID: "42", MealName: "Taco", Source: model.SourceStudent})
		require.NoError(t, err)

		require.NoError(t, repo.MarkPickedUp(ctx, order.ID))
		assert.NoError(t, repo.MarkPickedUp(ctx, order.ID))
	})

	t.Run("mark picked up on missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.MarkPickedUp(ctx, primitive.NewObjectID()))
	})
}
