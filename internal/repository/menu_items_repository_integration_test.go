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

func TestMenuItemsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewMenuItemsRepository(db)

	t.Run("list when empty", func(t *testing.T) {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("insert assigns id and timestamp", func(t *testing.T) {
		item, err := repo.Insert(ctx, &model.MenuItem{
			Name:        "Pizza",
			Description: "Cheesy and delicious.",
			Image:       "images/pizza.jpg",
			Calories:    400,
			Protein:     15,
		})
		require.NoError(t, err)
		assert.False(t, item.ID.IsZero())
		assert.False(t, item.CreatedAt.IsZero())
	})

	t.Run("find by id", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, &model.MenuItem{Name: "Salad", Calories: 150})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, inserted.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Salad", found.Name)
		assert.Equal(t, 150, found.Calories)
	})

	t.Run("find missing id returns nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		first, err := repo.Insert(ctx, &model.MenuItem{Name: "Soup", Calories: 120})
		require.NoError(t, err)
		second, err := repo.Insert(ctx, &model.MenuItem{Name: "Burger", Calories: 550})
		require.NoError(t, err)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(items), 2)

		indexOf := func(id primitive.ObjectID) int {
			for i, item := range items {
				if item.ID == id {
					return i
				}
			}
			return -1
		}
		assert.Less(t, indexOf(first.ID), indexOf(second.ID))
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Greater(t, count, int64(0))
	})

	t.Run("delete removes the item", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, &model.MenuItem{Name: "Taco", Calories: 320})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, inserted.ID))

		found, err := repo.FindByID(ctx, inserted.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, primitive.NewObjectID()))
	})
}
