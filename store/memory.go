package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"expensewise/models"

	"github.com/google/uuid"
)

// MemoryStore 进程内存储，用于开发与测试
type MemoryStore struct {
	mu           sync.RWMutex
	transactions map[string]models.Transaction
	budgets      map[string]models.Budget
	now          func() time.Time
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]models.Transaction),
		budgets:      make(map[string]models.Budget),
		now:          time.Now,
	}
}

func (s *MemoryStore) CreateTransaction(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	tx.ID = uuid.NewString()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	s.transactions[tx.ID] = tx
	return tx, nil
}

func (s *MemoryStore) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	out := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, tx)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, models.ErrNotFound
	}
	return tx, nil
}

func (s *MemoryStore) UpdateTransaction(_ context.Context, id string, src models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, models.ErrNotFound
	}
	tx.Replace(src)
	tx.UpdatedAt = s.now()
	s.transactions[id] = tx
	return tx, nil
}

func (s *MemoryStore) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *MemoryStore) ListBudgets(_ context.Context) ([]models.Budget, error) {
	s.mu.RLock()
	out := make([]models.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		out = append(out, b)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (s *MemoryStore) GetBudget(_ context.Context, id string) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.budgets[id]
	if !ok {
		return models.Budget{}, models.ErrNotFound
	}
	return b, nil
}

// findBudgetLocked 调用方需持有锁
func (s *MemoryStore) findBudgetLocked(category, month string) (models.Budget, bool) {
	for _, b := range s.budgets {
		if b.Category == category && b.Month == month {
			return b, true
		}
	}
	return models.Budget{}, false
}

func (s *MemoryStore) UpsertBudget(_ context.Context, src models.Budget) (models.Budget, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if b, ok := s.findBudgetLocked(src.Category, src.Month); ok {
		b.Amount = src.Amount
		b.UpdatedAt = now
		s.budgets[b.ID] = b
		return b, false, nil
	}
	b := models.Budget{
		ID:        uuid.NewString(),
		Category:  src.Category,
		Amount:    src.Amount,
		Month:     src.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.budgets[b.ID] = b
	return b, true, nil
}

func (s *MemoryStore) UpdateBudget(_ context.Context, id string, src models.Budget) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[id]
	if !ok {
		return models.Budget{}, models.ErrNotFound
	}
	if other, exists := s.findBudgetLocked(src.Category, src.Month); exists && other.ID != id {
		return models.Budget{}, models.ErrDuplicate
	}
	b.Replace(src)
	b.UpdatedAt = s.now()
	s.budgets[id] = b
	return b, nil
}

func (s *MemoryStore) DeleteBudget(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.budgets, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }
