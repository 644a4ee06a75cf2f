package report

import (
	"strings"

	"expensewise/models"
)

// Filter 交易列表筛选条件，空字段表示不限
type Filter struct {
	Search   string                 `form:"search"`
	Category string                 `form:"category"`
	Type     models.TransactionType `form:"type"`
}

// IsEmpty 是否无任何筛选条件
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && f.Category == "" && f.Type == ""
}

// FilterTransactions 按关键字（描述或分类，不区分大小写）、分类、类型筛选，保持原有顺序
func FilterTransactions(txs []models.Transaction, f Filter) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Description), search) &&
			!strings.Contains(strings.ToLower(tx.Category), search) {
			continue
		}
		if f.Category != "" && tx.Category != f.Category {
			continue
		}
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		out = append(out, tx)
	}
	return out
}
