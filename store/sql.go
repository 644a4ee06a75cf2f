package store

import (
	"context"
	"errors"
	"time"

	"expensewise/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore 基于 gorm 的关系型存储（MySQL / PostgreSQL）
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSQLStore 创建 SQL 存储
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// AutoMigrate 自动迁移表结构，budgets 上建立 (category, month) 联合唯一索引
func (s *SQLStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.Transaction{}, &models.Budget{})
}

func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrDuplicate
	case isOutOfRange(err):
		return models.ErrInvalidValue
	}
	return models.WrapStorage(op, err)
}

// isOutOfRange 字符串超长或数值超出列定义
// MySQL 1406 / 1264，PostgreSQL 22001 / 22003
func isOutOfRange(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1406 || myErr.Number == 1264
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22001" || pgErr.Code == "22003"
	}
	return false
}

func (s *SQLStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	now := s.now()
	tx.ID = uuid.NewString()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return models.Transaction{}, translate("create transaction", err)
	}
	return tx, nil
}

func (s *SQLStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	list := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&list).Error; err != nil {
		return nil, translate("list transactions", err)
	}
	return list, nil
}

func (s *SQLStore) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return models.Transaction{}, translate("get transaction", err)
	}
	return tx, nil
}

func (s *SQLStore) UpdateTransaction(ctx context.Context, id string, src models.Transaction) (models.Transaction, error) {
	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.Replace(src)
	tx.UpdatedAt = s.now()

	updates := map[string]interface{}{
		"amount":      tx.Amount,
		"description": tx.Description,
		"category":    tx.Category,
		"type":        tx.Type,
		"date":        tx.Date,
		"updated_at":  tx.UpdatedAt,
	}
	if err := s.db.WithContext(ctx).Model(&models.Transaction{ID: id}).Updates(updates).Error; err != nil {
		return models.Transaction{}, translate("update transaction", err)
	}
	return tx, nil
}

func (s *SQLStore) DeleteTransaction(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return translate("delete transaction", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	list := make([]models.Budget, 0)
	if err := s.db.WithContext(ctx).Order("month ASC, category ASC").Find(&list).Error; err != nil {
		return nil, translate("list budgets", err)
	}
	return list, nil
}

func (s *SQLStore) GetBudget(ctx context.Context, id string) (models.Budget, error) {
	var b models.Budget
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return models.Budget{}, translate("get budget", err)
	}
	return b, nil
}

// UpsertBudget 单条 INSERT ... ON CONFLICT / ON DUPLICATE KEY UPDATE，随后按唯一键读回
func (s *SQLStore) UpsertBudget(ctx context.Context, src models.Budget) (models.Budget, bool, error) {
	now := s.now()
	b := models.Budget{
		ID:        uuid.NewString(),
		Category:  src.Category,
		Amount:    src.Amount,
		Month:     src.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     b.Amount,
			"updated_at": now,
		}),
	}).Create(&b).Error
	if err != nil {
		return models.Budget{}, false, translate("upsert budget", err)
	}

	var stored models.Budget
	if err := s.db.WithContext(ctx).
		Where("category = ? AND month = ?", b.Category, b.Month).
		First(&stored).Error; err != nil {
		return models.Budget{}, false, translate("upsert budget", err)
	}
	return stored, stored.ID == b.ID, nil
}

func (s *SQLStore) UpdateBudget(ctx context.Context, id string, src models.Budget) (models.Budget, error) {
	b, err := s.GetBudget(ctx, id)
	if err != nil {
		return models.Budget{}, err
	}
	b.Replace(src)
	b.UpdatedAt = s.now()

	updates := map[string]interface{}{
		"category":   b.Category,
		"amount":     b.Amount,
		"month":      b.Month,
		"updated_at": b.UpdatedAt,
	}
	if err := s.db.WithContext(ctx).Model(&models.Budget{ID: id}).Updates(updates).Error; err != nil {
		return models.Budget{}, translate("update budget", err)
	}
	return b, nil
}

func (s *SQLStore) DeleteBudget(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Budget{})
	if res.Error != nil {
		return translate("delete budget", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.WrapStorage("ping", err)
	}
	return models.WrapStorage("ping", sqlDB.PingContext(ctx))
}

func (s *SQLStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
