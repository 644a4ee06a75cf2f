package models

import (
	"time"
)

// TransactionType 交易类型
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Transaction 收支记录模型
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Amount      float64         `json:"amount" gorm:"type:decimal(12,2);not null" validate:"gt=0,lt=10000000000"`
	Description string          `json:"description" gorm:"size:255;not null" validate:"required,min=3,max=255"`
	Category    string          `json:"category" gorm:"size:50;not null;index" validate:"required,category"`
	Type        TransactionType `json:"type" gorm:"size:10;not null;default:expense" validate:"required,oneof=expense income"`
	Date        time.Time       `json:"date" gorm:"not null;index" validate:"notzero"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsExpense 是否为支出
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome 是否为收入
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// Replace 用 src 的业务字段整体覆盖当前记录，保留 ID 与创建时间
func (t *Transaction) Replace(src Transaction) {
	t.Amount = src.Amount
	t.Description = src.Description
	t.Category = src.Category
	t.Type = src.Type
	t.Date = src.Date
}
