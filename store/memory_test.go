package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"expensewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction(amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Amount:      amount,
		Description: "Groceries run",
		Category:    models.CategoryGroceries,
		Type:        models.TypeExpense,
		Date:        date,
	}
}

func TestMemoryStore_TransactionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	older, err := s.CreateTransaction(ctx, sampleTransaction(10, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	newer, err := s.CreateTransaction(ctx, sampleTransaction(20, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.NotEmpty(t, older.ID)
	assert.NotEqual(t, older.ID, newer.ID)
	assert.False(t, older.CreatedAt.IsZero())

	list, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID, "newest first")

	replacement := sampleTransaction(99, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	replacement.Type = models.TypeIncome
	updated, err := s.UpdateTransaction(ctx, newer.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, updated.ID)
	assert.Equal(t, newer.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 99.0, updated.Amount)
	assert.Equal(t, models.TypeIncome, updated.Type)

	got, err := s.GetTransaction(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, s.DeleteTransaction(ctx, newer.ID))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, newer.ID), models.ErrNotFound)
	_, err = s.GetTransaction(ctx, newer.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.UpdateTransaction(ctx, "missing", replacement)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStore_CreateThenDeleteLeavesListingUnchanged(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.CreateTransaction(ctx, sampleTransaction(5, time.Now()))
	require.NoError(t, err)

	before, err := s.ListTransactions(ctx)
	require.NoError(t, err)

	created, err := s.CreateTransaction(ctx, sampleTransaction(7, time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.DeleteTransaction(ctx, created.ID))

	after, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryStore_UpsertBudget(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, created, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryFood, Amount: 100, Month: "2024-06"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryFood, Amount: 250, Month: "2024-06"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 250.0, second.Amount)

	// 同一分类不同月份可以共存
	_, created, err = s.UpsertBudget(ctx, models.Budget{Category: models.CategoryFood, Amount: 80, Month: "2024-07"})
	require.NoError(t, err)
	assert.True(t, created)

	list, err := s.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-06", list[0].Month)
}

func TestMemoryStore_UpsertBudgetConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryTravel, Amount: float64(i + 1), Month: "2024-06"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := s.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryStore_UpdateBudget(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food, _, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryFood, Amount: 100, Month: "2024-06"})
	require.NoError(t, err)
	travel, _, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryTravel, Amount: 300, Month: "2024-06"})
	require.NoError(t, err)

	updated, err := s.UpdateBudget(ctx, food.ID, models.Budget{Category: models.CategoryFood, Amount: 120, Month: "2024-07"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07", updated.Month)
	assert.Equal(t, food.CreatedAt, updated.CreatedAt)

	_, err = s.UpdateBudget(ctx, travel.ID, models.Budget{Category: models.CategoryFood, Amount: 1, Month: "2024-07"})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	_, err = s.UpdateBudget(ctx, "nope", models.Budget{Category: models.CategoryFood, Amount: 1, Month: "2024-07"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.DeleteBudget(ctx, travel.ID))
	assert.ErrorIs(t, s.DeleteBudget(ctx, travel.ID), models.ErrNotFound)
	_, err = s.GetBudget(ctx, travel.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
