package report

import (
	"sort"

	"expensewise/models"

	"github.com/shopspring/decimal"
)

// BudgetComparison 分类预算与实际支出对比
type BudgetComparison struct {
	Category     string   `json:"category"`
	BudgetAmount float64  `json:"budgetAmount"`
	ActualAmount float64  `json:"actualAmount"`
	Remaining    float64  `json:"remaining"`
	Overspent    float64  `json:"overspent"`
	PercentUsed  *float64 `json:"percentUsed,omitempty"` // 仅 budget > 0 时给出
}

// BudgetOverview 预算页顶部汇总卡片
type BudgetOverview struct {
	TotalBudget          float64 `json:"totalBudget"`
	TotalSpent           float64 `json:"totalSpent"`
	CategoriesOverBudget int     `json:"categoriesOverBudget"`
}

// BudgetsForMonth 过滤出指定月份的预算
func BudgetsForMonth(budgets []models.Budget, month string) []models.Budget {
	out := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out
}

// CompareBudgets 按分类对比 month 的预算与实际支出
//
// 结果按 categories 的顺序排列；不在 categories 中但有预算或支出的分类按名称追加在末尾。
// 预算与支出均为 0 的分类不出现。同一分类同月存在多条预算时取第一条。
func CompareBudgets(categories []string, budgets []models.Budget, actual map[string]float64, month string) []BudgetComparison {
	budgetByCategory := make(map[string]decimal.Decimal)
	for _, b := range BudgetsForMonth(budgets, month) {
		if _, seen := budgetByCategory[b.Category]; seen {
			continue
		}
		budgetByCategory[b.Category] = contribution(b.Amount)
	}

	order := make([]string, 0, len(categories))
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := known[c]; dup {
			continue
		}
		known[c] = struct{}{}
		order = append(order, c)
	}
	var extra []string
	for c := range budgetByCategory {
		if _, ok := known[c]; !ok {
			known[c] = struct{}{}
			extra = append(extra, c)
		}
	}
	for c := range actual {
		if _, ok := known[c]; !ok {
			known[c] = struct{}{}
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	out := make([]BudgetComparison, 0, len(order))
	for _, c := range order {
		budget := budgetByCategory[c]
		spent := contribution(actual[c])
		if budget.IsZero() && spent.IsZero() {
			continue
		}
		row := BudgetComparison{
			Category:     c,
			BudgetAmount: budget.InexactFloat64(),
			ActualAmount: spent.InexactFloat64(),
			Remaining:    decimal.Max(decimal.Zero, budget.Sub(spent)).InexactFloat64(),
			Overspent:    decimal.Max(decimal.Zero, spent.Sub(budget)).InexactFloat64(),
		}
		if budget.IsPositive() {
			pct := spent.Div(budget).Mul(decimal.NewFromInt(100)).InexactFloat64()
			row.PercentUsed = &pct
		}
		out = append(out, row)
	}
	return out
}

// Overview 汇总对比结果：总预算、总支出、超支分类数
func Overview(rows []BudgetComparison) BudgetOverview {
	budget := decimal.Zero
	spent := decimal.Zero
	var over int
	for _, r := range rows {
		budget = budget.Add(decimal.NewFromFloat(r.BudgetAmount))
		spent = spent.Add(decimal.NewFromFloat(r.ActualAmount))
		if r.Overspent > 0 {
			over++
		}
	}
	return BudgetOverview{
		TotalBudget:          budget.InexactFloat64(),
		TotalSpent:           spent.InexactFloat64(),
		CategoriesOverBudget: over,
	}
}
