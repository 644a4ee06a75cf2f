package client

import (
	"context"
	"sort"
	"sync"
	"time"

	"expensewise/models"
	"expensewise/report"
)

// State 本地收支与预算镜像
// 所有写操作先等待服务端结果，成功后才更新本地数据；失败时本地数据保持不变
type State struct {
	api *Client

	mu           sync.RWMutex
	transactions []models.Transaction
	budgets      []models.Budget
}

// NewState 创建空状态，调用 Reload 加载服务端数据
func NewState(api *Client) *State {
	return &State{api: api}
}

// Reload 从服务端重新加载全部收支记录与预算
func (s *State) Reload(ctx context.Context) error {
	txs, err := s.api.ListTransactions(ctx)
	if err != nil {
		return err
	}
	budgets, err := s.api.ListBudgets(ctx, "")
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.transactions = txs
	s.budgets = budgets
	s.mu.Unlock()
	return nil
}

// Transactions 收支记录快照（日期倒序）
func (s *State) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Budgets 预算快照
func (s *State) Budgets() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Budget(nil), s.budgets...)
}

func sortTransactions(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

// AddTransaction 创建收支记录
func (s *State) AddTransaction(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	tx, err := s.api.CreateTransaction(ctx, in)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	sortTransactions(s.transactions)
	s.mu.Unlock()
	return tx, nil
}

// EditTransaction 整体更新收支记录
func (s *State) EditTransaction(ctx context.Context, id string, in TransactionInput) (models.Transaction, error) {
	tx, err := s.api.UpdateTransaction(ctx, id, in)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i] = tx
			replaced = true
			break
		}
	}
	if !replaced {
		s.transactions = append(s.transactions, tx)
	}
	sortTransactions(s.transactions)
	s.mu.Unlock()
	return tx, nil
}

// RemoveTransaction 删除收支记录
func (s *State) RemoveTransaction(ctx context.Context, id string) error {
	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// SetBudget 设置分类月度预算，覆盖时替换本地同一记录
func (s *State) SetBudget(ctx context.Context, in BudgetInput) (models.Budget, error) {
	b, _, err := s.api.SetBudget(ctx, in)
	if err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			s.budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		s.budgets = append(s.budgets, b)
	}
	s.mu.Unlock()
	return b, nil
}

// RemoveBudget 删除预算
func (s *State) RemoveBudget(ctx context.Context, id string) error {
	if err := s.api.DeleteBudget(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i:i], s.budgets[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Summary ref 所在月份的收支汇总
func (s *State) Summary(ref time.Time) report.Summary {
	return report.CurrentMonthSummary(s.Transactions(), ref)
}

// MonthlyExpenses 截至 ref 的近 6 个月支出
func (s *State) MonthlyExpenses(ref time.Time) []report.MonthlyExpense {
	return report.MonthlyExpenses(s.Transactions(), ref)
}

// CategoryExpenses 各分类累计支出
func (s *State) CategoryExpenses() []report.CategoryTotal {
	return report.SortedCategoryExpenses(s.Transactions())
}

// BudgetComparison ref 所在月份的预算执行情况
func (s *State) BudgetComparison(ref time.Time) ([]report.BudgetComparison, report.BudgetOverview) {
	txs := s.Transactions()
	rows := report.CompareBudgets(models.Categories(), s.Budgets(), report.ActualSpending(txs, ref), models.MonthKey(ref))
	return rows, report.Overview(rows)
}

// Recent 最近 n 条记录
func (s *State) Recent(n int) []models.Transaction {
	return report.RecentTransactions(s.Transactions(), n)
}

// Filter 按筛选条件返回记录
func (s *State) Filter(f report.Filter) []models.Transaction {
	return report.FilterTransactions(s.Transactions(), f)
}
