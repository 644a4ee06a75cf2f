package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"sync"
	"time"

	"expensewise/models"
	"expensewise/report"
	"expensewise/store"
)

// BudgetAlerter 在某分类当月支出超过预算时发送提醒邮件
// 同一 (month, category, budget amount) 只提醒一次
type BudgetAlerter struct {
	store  store.Store
	mailer Mailer
	to     string

	mu   sync.Mutex
	sent map[string]struct{}
}

// NewBudgetAlerter 创建预算提醒
func NewBudgetAlerter(s store.Store, mailer Mailer, to string) *BudgetAlerter {
	return &BudgetAlerter{
		store:  s,
		mailer: mailer,
		to:     to,
		sent:   make(map[string]struct{}),
	}
}

// CheckCategory 检查 at 所在月份 category 的预算执行情况，超支则发送邮件
// 返回是否发送了提醒
func (a *BudgetAlerter) CheckCategory(ctx context.Context, category string, at time.Time) (bool, error) {
	if a == nil || a.mailer == nil || a.to == "" {
		return false, nil
	}

	budgets, err := a.store.ListBudgets(ctx)
	if err != nil {
		return false, err
	}
	month := models.MonthKey(at)
	monthBudgets := report.BudgetsForMonth(budgets, month)
	if len(monthBudgets) == 0 {
		return false, nil
	}

	txs, err := a.store.ListTransactions(ctx)
	if err != nil {
		return false, err
	}
	actual := report.ActualSpending(txs, at)

	var row *report.BudgetComparison
	for _, r := range report.CompareBudgets(models.Categories(), monthBudgets, actual, month) {
		if r.Category == category {
			r := r
			row = &r
			break
		}
	}
	if row == nil || row.BudgetAmount <= 0 || row.Overspent <= 0 {
		return false, nil
	}

	key := fmt.Sprintf("%s|%s|%.2f", month, category, row.BudgetAmount)
	a.mu.Lock()
	if _, done := a.sent[key]; done {
		a.mu.Unlock()
		return false, nil
	}
	a.sent[key] = struct{}{}
	a.mu.Unlock()

	subject := fmt.Sprintf("[ExpenseWise] %s over budget for %s", category, month)
	if err := a.mailer.Send(a.to, subject, alertBody(month, *row)); err != nil {
		a.mu.Lock()
		delete(a.sent, key)
		a.mu.Unlock()
		return false, err
	}
	slog.Info("budget alert sent", "component", "alert", "category", category, "month", month, "overspent", row.Overspent)
	return true, nil
}

func alertBody(month string, row report.BudgetComparison) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Budget exceeded: %s</h2>
  <p>Month: <strong>%s</strong></p>
  <table cellpadding="6">
    <tr><td>Budget</td><td>$%.2f</td></tr>
    <tr><td>Spent</td><td>$%.2f</td></tr>
    <tr><td>Over by</td><td style="color:#dc2626;">$%.2f</td></tr>
  </table>
  <p style="color:#6b7280;font-size:12px;">Sent automatically by ExpenseWise.</p>
</body>
</html>
`, html.EscapeString(row.Category), month, row.BudgetAmount, row.ActualAmount, row.Overspent)
}
