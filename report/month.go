// Package report 基于内存中的交易与预算集合计算派生视图。
//
// 所有函数均为纯函数：不修改入参、不做 I/O、不返回错误。
// 参考日期由调用方传入，月份边界为闭区间 [月初第一刻, 月末最后一刻]。
package report

import (
	"math"
	"time"

	"expensewise/models"

	"github.com/shopspring/decimal"
)

// TrailingMonths 月度支出序列长度（含当月）
const TrailingMonths = 6

// MonthRange 返回 ref 所在月份的起止时刻（ref 的时区），两端均包含
func MonthRange(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// contribution 非法金额（<=0、NaN、Inf）按 0 计入
func contribution(amount float64) decimal.Decimal {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount)
}

func sumWhere(txs []models.Transaction, keep func(models.Transaction) bool) float64 {
	total := decimal.Zero
	for _, tx := range txs {
		if keep(tx) {
			total = total.Add(contribution(tx.Amount))
		}
	}
	return total.InexactFloat64()
}

// MonthlyExpense 单月支出合计
type MonthlyExpense struct {
	Month    string  `json:"month"` // YYYY-MM
	Label    string  `json:"label"` // Jan 2006
	Expenses float64 `json:"expenses"`
}

// MonthlyExpenses 最近 6 个自然月（由旧到新，含当月）的支出合计，无数据的月份为 0
func MonthlyExpenses(txs []models.Transaction, ref time.Time) []MonthlyExpense {
	current, _ := MonthRange(ref)
	out := make([]MonthlyExpense, 0, TrailingMonths)
	for i := TrailingMonths - 1; i >= 0; i-- {
		start, end := MonthRange(current.AddDate(0, -i, 0))
		out = append(out, MonthlyExpense{
			Month: models.MonthKey(start),
			Label: start.Format("Jan 2006"),
			Expenses: sumWhere(txs, func(tx models.Transaction) bool {
				return tx.IsExpense() && inRange(tx.Date, start, end)
			}),
		})
	}
	return out
}

// Summary 当月收支汇总
type Summary struct {
	TotalExpenses float64 `json:"totalExpenses"`
	TotalIncome   float64 `json:"totalIncome"`
	NetBalance    float64 `json:"netBalance"`
}

// CurrentMonthSummary 计算 ref 所在月份的支出、收入与结余
func CurrentMonthSummary(txs []models.Transaction, ref time.Time) Summary {
	start, end := MonthRange(ref)
	expenses := decimal.Zero
	income := decimal.Zero
	for _, tx := range txs {
		if !inRange(tx.Date, start, end) {
			continue
		}
		switch tx.Type {
		case models.TypeExpense:
			expenses = expenses.Add(contribution(tx.Amount))
		case models.TypeIncome:
			income = income.Add(contribution(tx.Amount))
		}
	}
	return Summary{
		TotalExpenses: expenses.InexactFloat64(),
		TotalIncome:   income.InexactFloat64(),
		NetBalance:    income.Sub(expenses).InexactFloat64(),
	}
}

// RecentTransactions 返回前 n 条（n<=0 时取 5），不重新排序
// 调用方应已按日期倒序传入
func RecentTransactions(txs []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		n = 5
	}
	if len(txs) < n {
		n = len(txs)
	}
	out := make([]models.Transaction, n)
	copy(out, txs[:n])
	return out
}
