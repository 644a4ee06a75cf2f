package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"expensewise/config"
	"expensewise/models"
	"expensewise/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

func seedOverspend(t *testing.T, s store.Store, at time.Time) {
	ctx := context.Background()
	_, _, err := s.UpsertBudget(ctx, models.Budget{Category: models.CategoryFood, Amount: 100, Month: models.MonthKey(at)})
	require.NoError(t, err)
	_, err = s.CreateTransaction(ctx, models.Transaction{
		Amount: 150, Description: "Team dinner", Category: models.CategoryFood, Type: models.TypeExpense, Date: at,
	})
	require.NoError(t, err)
}

func TestBudgetAlerter_SendsOncePerBudget(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := store.NewMemoryStore()
	seedOverspend(t, s, at)
	mailer := &fakeMailer{}
	a := NewBudgetAlerter(s, mailer, "me@example.com")

	sent, err := a.CheckCategory(context.Background(), models.CategoryFood, at)
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "me@example.com", mailer.sent[0].to)
	assert.Equal(t, "[ExpenseWise] Food & Dining over budget for 2024-06", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "$50.00")
	assert.Contains(t, mailer.sent[0].body, "Food &amp; Dining")

	sent, err = a.CheckCategory(context.Background(), models.CategoryFood, at)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Len(t, mailer.sent, 1)

	// 调整预算后再次超支会重新提醒
	_, _, err = s.UpsertBudget(context.Background(), models.Budget{Category: models.CategoryFood, Amount: 120, Month: "2024-06"})
	require.NoError(t, err)
	sent, err = a.CheckCategory(context.Background(), models.CategoryFood, at)
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestBudgetAlerter_NoAlertWithinBudgetOrWithoutBudget(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := store.NewMemoryStore()
	seedOverspend(t, s, at)
	mailer := &fakeMailer{}
	a := NewBudgetAlerter(s, mailer, "me@example.com")

	sent, err := a.CheckCategory(context.Background(), models.CategoryTravel, at)
	require.NoError(t, err)
	assert.False(t, sent)

	// 其他月份没有预算
	sent, err = a.CheckCategory(context.Background(), models.CategoryFood, at.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, mailer.sent)
}

func TestBudgetAlerter_MailerErrorAllowsRetry(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := store.NewMemoryStore()
	seedOverspend(t, s, at)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	a := NewBudgetAlerter(s, mailer, "me@example.com")

	_, err := a.CheckCategory(context.Background(), models.CategoryFood, at)
	require.Error(t, err)

	mailer.err = nil
	sent, err := a.CheckCategory(context.Background(), models.CategoryFood, at)
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestBudgetAlerter_DisabledWithoutRecipient(t *testing.T) {
	a := NewBudgetAlerter(store.NewMemoryStore(), &fakeMailer{}, "")
	sent, err := a.CheckCategory(context.Background(), models.CategoryFood, time.Now())
	require.NoError(t, err)
	assert.False(t, sent)

	var nilAlerter *BudgetAlerter
	sent, err = nilAlerter.CheckCategory(context.Background(), models.CategoryFood, time.Now())
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestEmailService_Disabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.Send("me@example.com", "subject", "<p>body</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}
