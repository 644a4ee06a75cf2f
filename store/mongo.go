package store

import (
	"context"
	"errors"
	"time"

	"expensewise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	transactionsCollection = "transactions"
	budgetsCollection      = "budgets"
)

type transactionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Amount      float64            `bson:"amount"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Type        string             `bson:"type"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d transactionDocument) model() models.Transaction {
	return models.Transaction{
		ID:          d.ID.Hex(),
		Amount:      d.Amount,
		Description: d.Description,
		Category:    d.Category,
		Type:        models.TransactionType(d.Type),
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type budgetDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Category  string             `bson:"category"`
	Amount    float64            `bson:"amount"`
	Month     string             `bson:"month"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d budgetDocument) model() models.Budget {
	return models.Budget{
		ID:        d.ID.Hex(),
		Category:  d.Category,
		Amount:    d.Amount,
		Month:     d.Month,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// MongoStore 基于 MongoDB 的文档存储
type MongoStore struct {
	db           *mongo.Database
	transactions *mongo.Collection
	budgets      *mongo.Collection
	now          func() time.Time
}

// NewMongoStore 创建 MongoDB 存储
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		db:           db,
		transactions: db.Collection(transactionsCollection),
		budgets:      db.Collection(budgetsCollection),
		now:          func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// EnsureIndexes 创建索引：transactions.date 倒序，budgets (category, month) 唯一
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	}); err != nil {
		return models.WrapStorage("create transactions index", err)
	}
	if _, err := s.budgets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("category_month_unique"),
	}); err != nil {
		return models.WrapStorage("create budgets index", err)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return oid, nil
}

func translateMongo(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return models.ErrDuplicate
	}
	return models.WrapStorage(op, err)
}

func (s *MongoStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	now := s.now()
	doc := transactionDocument{
		ID:          primitive.NewObjectID(),
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Type:        string(tx.Type),
		Date:        tx.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.transactions.InsertOne(ctx, doc); err != nil {
		return models.Transaction{}, translateMongo("create transaction", err)
	}
	return doc.model(), nil
}

func (s *MongoStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	cur, err := s.transactions.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, translateMongo("list transactions", err)
	}
	var docs []transactionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateMongo("list transactions", err)
	}
	out := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *MongoStore) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Transaction{}, err
	}
	var doc transactionDocument
	if err := s.transactions.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return models.Transaction{}, translateMongo("get transaction", err)
	}
	return doc.model(), nil
}

func (s *MongoStore) UpdateTransaction(ctx context.Context, id string, tx models.Transaction) (models.Transaction, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Transaction{}, err
	}
	update := bson.M{"$set": bson.M{
		"amount":      tx.Amount,
		"description": tx.Description,
		"category":    tx.Category,
		"type":        string(tx.Type),
		"date":        tx.Date,
		"updatedAt":   s.now(),
	}}
	var doc transactionDocument
	err = s.transactions.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return models.Transaction{}, translateMongo("update transaction", err)
	}
	return doc.model(), nil
}

func (s *MongoStore) DeleteTransaction(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.transactions.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translateMongo("delete transaction", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	cur, err := s.budgets.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "month", Value: 1}, {Key: "category", Value: 1}}))
	if err != nil {
		return nil, translateMongo("list budgets", err)
	}
	var docs []budgetDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateMongo("list budgets", err)
	}
	out := make([]models.Budget, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *MongoStore) GetBudget(ctx context.Context, id string) (models.Budget, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Budget{}, err
	}
	var doc budgetDocument
	if err := s.budgets.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return models.Budget{}, translateMongo("get budget", err)
	}
	return doc.model(), nil
}

// UpsertBudget 以 (category, month) 为过滤条件的单次 upsert，依赖唯一索引保证不重复
func (s *MongoStore) UpsertBudget(ctx context.Context, b models.Budget) (models.Budget, bool, error) {
	now := s.now()
	filter := bson.M{"category": b.Category, "month": b.Month}
	update := bson.M{
		"$set":         bson.M{"amount": b.Amount, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	res, err := s.budgets.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.Budget{}, false, translateMongo("upsert budget", err)
	}

	var doc budgetDocument
	if err := s.budgets.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.Budget{}, false, translateMongo("upsert budget", err)
	}
	return doc.model(), res.UpsertedCount > 0, nil
}

func (s *MongoStore) UpdateBudget(ctx context.Context, id string, b models.Budget) (models.Budget, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Budget{}, err
	}
	update := bson.M{"$set": bson.M{
		"category":  b.Category,
		"amount":    b.Amount,
		"month":     b.Month,
		"updatedAt": s.now(),
	}}
	var doc budgetDocument
	err = s.budgets.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return models.Budget{}, translateMongo("update budget", err)
	}
	return doc.model(), nil
}

func (s *MongoStore) DeleteBudget(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.budgets.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translateMongo("delete budget", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return models.WrapStorage("ping", s.db.Client().Ping(ctx, nil))
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
