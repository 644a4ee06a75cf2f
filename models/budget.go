package models

import (
	"fmt"
	"time"
)

// MonthLayout 预算周期格式 YYYY-MM
const MonthLayout = "2006-01"

// Budget 分类月度预算
// (category, month) 组合唯一，同一分类在不同月份可以各有一条预算
type Budget struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Category  string    `json:"category" gorm:"size:50;not null;uniqueIndex:idx_budget_category_month" validate:"required,category"`
	Amount    float64   `json:"amount" gorm:"type:decimal(12,2);not null" validate:"gt=0,lt=10000000000"`
	Month     string    `json:"month" gorm:"size:7;not null;uniqueIndex:idx_budget_category_month" validate:"required,yearmonth"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// Replace 用 src 的业务字段整体覆盖当前预算，保留 ID 与创建时间
func (b *Budget) Replace(src Budget) {
	b.Category = src.Category
	b.Amount = src.Amount
	b.Month = src.Month
}

// MonthKey 返回时间所在月份的 YYYY-MM 键
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth 解析 YYYY-MM，返回该月第一天 00:00:00（loc 时区）
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t, nil
}
