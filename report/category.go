package report

import (
	"sort"
	"time"

	"expensewise/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal 分类支出合计（饼图数据）
type CategoryTotal struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

func categorySums(txs []models.Transaction, keep func(models.Transaction) bool) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if !tx.IsExpense() || !keep(tx) {
			continue
		}
		c := contribution(tx.Amount)
		if c.IsZero() {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(c)
	}
	return sums
}

func toFloatMap(sums map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(sums))
	for k, v := range sums {
		out[k] = v.InexactFloat64()
	}
	return out
}

// CategoryExpenses 全部时间范围内按分类汇总支出，支出为 0 的分类不出现
func CategoryExpenses(txs []models.Transaction) map[string]float64 {
	return toFloatMap(categorySums(txs, func(models.Transaction) bool { return true }))
}

// SortedCategoryExpenses 同 CategoryExpenses，按金额降序（金额相同按名称），附带占比
func SortedCategoryExpenses(txs []models.Transaction) []CategoryTotal {
	sums := categorySums(txs, func(models.Transaction) bool { return true })
	total := decimal.Zero
	for _, v := range sums {
		total = total.Add(v)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for name, v := range sums {
		ct := CategoryTotal{Category: name, Total: v.InexactFloat64()}
		if total.IsPositive() {
			ct.Percentage = v.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ActualSpending ref 所在月份各分类的支出，边界与 CurrentMonthSummary 一致
func ActualSpending(txs []models.Transaction, ref time.Time) map[string]float64 {
	start, end := MonthRange(ref)
	return toFloatMap(categorySums(txs, func(tx models.Transaction) bool {
		return inRange(tx.Date, start, end)
	}))
}
