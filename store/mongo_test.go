package store

import (
	"context"
	"testing"
	"time"

	"expensewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	mt.Run("create transaction", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := s.CreateTransaction(context.Background(), sampleTransaction(12.5, date))
		require.NoError(mt, err)
		assert.Len(mt, created.ID, 24)
		assert.Equal(mt, 12.5, created.Amount)
		assert.False(mt, created.CreatedAt.IsZero())
	})

	mt.Run("list transactions", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + transactionsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "amount", Value: 30.0},
				{Key: "description", Value: "Train ticket"},
				{Key: "category", Value: models.CategoryTransport},
				{Key: "type", Value: "expense"},
				{Key: "date", Value: date},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "amount", Value: 2000.0},
				{Key: "description", Value: "Salary"},
				{Key: "category", Value: models.CategoryOther},
				{Key: "type", Value: "income"},
				{Key: "date", Value: date.AddDate(0, 0, -1)},
			},
		))

		list, err := s.ListTransactions(context.Background())
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, first.Hex(), list[0].ID)
		assert.Equal(mt, models.TypeIncome, list[1].Type)
		assert.True(mt, list[0].Date.Equal(date))
	})

	mt.Run("get transaction invalid id", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		_, err := s.GetTransaction(context.Background(), "not-an-object-id")
		assert.ErrorIs(mt, err, models.ErrInvalidID)
	})

	mt.Run("get transaction not found", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		ns := mt.DB.Name() + "." + transactionsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := s.GetTransaction(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, models.ErrNotFound)
	})

	mt.Run("update transaction", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "amount", Value: 99.0},
				{Key: "description", Value: "Groceries run"},
				{Key: "category", Value: models.CategoryGroceries},
				{Key: "type", Value: "expense"},
				{Key: "date", Value: date},
			}},
		})

		updated, err := s.UpdateTransaction(context.Background(), id.Hex(), sampleTransaction(99, date))
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), updated.ID)
		assert.Equal(mt, 99.0, updated.Amount)
	})

	mt.Run("delete transaction", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(mt, s.DeleteTransaction(context.Background(), id))
		assert.ErrorIs(mt, s.DeleteTransaction(context.Background(), id), models.ErrNotFound)
	})

	mt.Run("upsert budget creates", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + budgetsCollection
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 0},
				bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
			),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "category", Value: models.CategoryFood},
				{Key: "amount", Value: 100.0},
				{Key: "month", Value: "2024-06"},
			}),
		)

		b, created, err := s.UpsertBudget(context.Background(), models.Budget{Category: models.CategoryFood, Amount: 100, Month: "2024-06"})
		require.NoError(mt, err)
		assert.True(mt, created)
		assert.Equal(mt, id.Hex(), b.ID)
		assert.Equal(mt, "2024-06", b.Month)
	})

	mt.Run("upsert budget replaces", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + budgetsCollection
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "category", Value: models.CategoryFood},
				{Key: "amount", Value: 250.0},
				{Key: "month", Value: "2024-06"},
			}),
		)

		b, created, err := s.UpsertBudget(context.Background(), models.Budget{Category: models.CategoryFood, Amount: 250, Month: "2024-06"})
		require.NoError(mt, err)
		assert.False(mt, created)
		assert.Equal(mt, 250.0, b.Amount)
	})

	mt.Run("update budget duplicate", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		_, err := s.UpdateBudget(context.Background(), primitive.NewObjectID().Hex(),
			models.Budget{Category: models.CategoryFood, Amount: 1, Month: "2024-06"})
		assert.ErrorIs(mt, err, models.ErrDuplicate)
	})

	mt.Run("command error wraps as storage error", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := s.ListBudgets(context.Background())
		var se *models.StorageError
		require.ErrorAs(mt, err, &se)
		assert.Equal(mt, "list budgets", se.Op)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		require.NoError(mt, s.EnsureIndexes(context.Background()))
	})
}
