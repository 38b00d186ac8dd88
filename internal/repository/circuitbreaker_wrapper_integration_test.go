//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/circuitbreaker"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

func TestOrdersRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewOrdersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewOrdersRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		order, err := wrappedRepo.Insert(ctx, &model.Order{
			StudentID: "42",
			MealName:  "Pizza",
			Source:    model.SourceStudent,
		})
		require.NoError(t, err)
		assert.False(t, order.ID.IsZero())

		orders, err := wrappedRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("circuit breaker MarkPickedUp", func(t *testing.T) {
		assert.NoError(t, wrappedRepo.MarkPickedUp(ctx, primitive.NewObjectID()))
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("circuit breaker GetCircuitBreaker", func(t *testing.T) {
		returnedCB := wrappedRepo.GetCircuitBreaker()
		assert.NotNil(t, returnedCB)
		assert.Equal(t, cb, returnedCB)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		err := wrappedRepo.Create(ctx, &LogEntryDocument{Level: "info", Message: "Test entry"})
		assert.NoError(t, err)

		err = wrappedRepo.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "Bulk 1"},
			{Level: "info", Message: "Bulk 2"},
		})
		assert.NoError(t, err)
	})

	t.Run("circuit breaker Query and Count", func(t *testing.T) {
		entries, err := wrappedRepo.Query(ctx, LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(entries), 3)

		count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(3))
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})
}
