// Package store 定义收支与预算的持久化网关，并提供 SQL（gorm）、MongoDB 与内存三种实现。
//
// 所有实现遵循同一约定：
//   - ListTransactions 按 date 倒序返回
//   - 不存在的 ID 返回 models.ErrNotFound，格式非法的 ID 返回 models.ErrInvalidID
//   - 预算以 (category, month) 唯一，UpsertBudget 为单次原子写入
//   - 其余底层错误包装为 *models.StorageError，不重试
package store

import (
	"context"

	"expensewise/models"
)

// TransactionStore 收支记录持久化
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, tx models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// BudgetStore 预算持久化
type BudgetStore interface {
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudget(ctx context.Context, id string) (models.Budget, error)
	// UpsertBudget 按 (category, month) 创建或覆盖金额，created 表示是否新建
	UpsertBudget(ctx context.Context, b models.Budget) (budget models.Budget, created bool, err error)
	UpdateBudget(ctx context.Context, id string, b models.Budget) (models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
}

// Store 完整的持久化网关
type Store interface {
	TransactionStore
	BudgetStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLStore)(nil)
	_ Store = (*MongoStore)(nil)
)
