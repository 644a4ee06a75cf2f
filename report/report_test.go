package report

import (
	"math"
	"testing"
	"time"

	"expensewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(amount float64, typ models.TransactionType, category string, date time.Time) models.Transaction {
	return models.Transaction{Amount: amount, Type: typ, Category: category, Description: "test", Date: date}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(day(2024, 2, 10))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthlyExpenses_AlwaysSixMonths(t *testing.T) {
	ref := day(2024, 6, 20)

	empty := MonthlyExpenses(nil, ref)
	require.Len(t, empty, TrailingMonths)
	for _, m := range empty {
		assert.Zero(t, m.Expenses)
	}
	assert.Equal(t, "2024-01", empty[0].Month)
	assert.Equal(t, "2024-06", empty[5].Month)
	assert.Equal(t, "Jun 2024", empty[5].Label)

	txs := []models.Transaction{
		tx(10, models.TypeExpense, models.CategoryFood, day(2024, 6, 1)),
		tx(20, models.TypeExpense, models.CategoryFood, day(2024, 3, 15)),
		tx(500, models.TypeIncome, models.CategoryOther, day(2024, 6, 2)),
		tx(99, models.TypeExpense, models.CategoryFood, day(2023, 12, 31)), // 窗口之外
		tx(5, models.TypeExpense, models.CategoryFood, day(2024, 7, 1)),    // 未来月份
	}
	got := MonthlyExpenses(txs, ref)
	require.Len(t, got, TrailingMonths)
	assert.Equal(t, []float64{0, 0, 20, 0, 0, 10}, []float64{
		got[0].Expenses, got[1].Expenses, got[2].Expenses, got[3].Expenses, got[4].Expenses, got[5].Expenses,
	})
}

func TestMonthlyExpenses_YearWrap(t *testing.T) {
	got := MonthlyExpenses(nil, day(2024, 2, 29))
	months := make([]string, 0, len(got))
	for _, m := range got {
		months = append(months, m.Month)
	}
	assert.Equal(t, []string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}, months)
}

func TestBoundaryInstantsAreIncluded(t *testing.T) {
	ref := day(2024, 6, 20)
	start, end := MonthRange(ref)
	txs := []models.Transaction{
		tx(1, models.TypeExpense, models.CategoryFood, start),
		tx(2, models.TypeExpense, models.CategoryFood, end),
		tx(4, models.TypeExpense, models.CategoryFood, start.Add(-time.Nanosecond)),
		tx(8, models.TypeExpense, models.CategoryFood, end.Add(time.Nanosecond)),
	}

	series := MonthlyExpenses(txs, ref)
	assert.Equal(t, 3.0, series[5].Expenses)
	assert.Equal(t, 4.0, series[4].Expenses)

	assert.Equal(t, 3.0, CurrentMonthSummary(txs, ref).TotalExpenses)
	assert.Equal(t, map[string]float64{models.CategoryFood: 3}, ActualSpending(txs, ref))
}

func TestCurrentMonthSummary_Scenario(t *testing.T) {
	txs := []models.Transaction{
		tx(50, models.TypeExpense, models.CategoryFood, day(2024, 6, 15)),
		tx(2000, models.TypeIncome, models.CategoryOther, day(2024, 6, 1)),
	}
	got := CurrentMonthSummary(txs, day(2024, 6, 20))
	assert.Equal(t, Summary{TotalExpenses: 50, TotalIncome: 2000, NetBalance: 1950}, got)
}

func TestCurrentMonthSummary_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, CurrentMonthSummary(nil, day(2024, 6, 20)))
}

func TestCurrentMonthSummary_DecimalSums(t *testing.T) {
	txs := []models.Transaction{
		tx(0.1, models.TypeExpense, models.CategoryFood, day(2024, 6, 3)),
		tx(0.2, models.TypeExpense, models.CategoryFood, day(2024, 6, 4)),
		tx(0.3, models.TypeIncome, models.CategoryOther, day(2024, 6, 5)),
	}
	got := CurrentMonthSummary(txs, day(2024, 6, 20))
	assert.Equal(t, 0.3, got.TotalExpenses)
	assert.Equal(t, 0.0, got.NetBalance)
}

func TestInvalidAmountsContributeZero(t *testing.T) {
	txs := []models.Transaction{
		tx(-5, models.TypeExpense, models.CategoryFood, day(2024, 6, 3)),
		tx(math.NaN(), models.TypeExpense, models.CategoryFood, day(2024, 6, 3)),
		tx(7, models.TypeExpense, models.CategoryTravel, day(2024, 6, 3)),
	}
	assert.Equal(t, 7.0, CurrentMonthSummary(txs, day(2024, 6, 20)).TotalExpenses)
	assert.Equal(t, map[string]float64{models.CategoryTravel: 7}, CategoryExpenses(txs))
}

func TestCategoryExpenses(t *testing.T) {
	txs := []models.Transaction{
		tx(10, models.TypeExpense, models.CategoryFood, day(2022, 1, 1)),
		tx(15, models.TypeExpense, models.CategoryFood, day(2024, 6, 1)),
		tx(30, models.TypeExpense, models.CategoryTravel, day(2024, 5, 1)),
		tx(900, models.TypeIncome, models.CategoryOther, day(2024, 6, 1)),
	}
	got := CategoryExpenses(txs)
	assert.Equal(t, map[string]float64{models.CategoryFood: 25, models.CategoryTravel: 30}, got)
	_, hasOther := got[models.CategoryOther]
	assert.False(t, hasOther)

	assert.Empty(t, CategoryExpenses(nil))

	sorted := SortedCategoryExpenses(txs)
	require.Len(t, sorted, 2)
	assert.Equal(t, models.CategoryTravel, sorted[0].Category)
	assert.InDelta(t, 54.545454, sorted[0].Percentage, 0.0001)
	assert.InDelta(t, 100, sorted[0].Percentage+sorted[1].Percentage, 0.0001)
}

func TestCompareBudgets_Overspent(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Amount: 100, Month: "2024-06"}}
	actual := map[string]float64{models.CategoryFood: 150}

	rows := CompareBudgets(models.Categories(), budgets, actual, "2024-06")
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 100.0, row.BudgetAmount)
	assert.Equal(t, 150.0, row.ActualAmount)
	assert.Equal(t, 0.0, row.Remaining)
	assert.Equal(t, 50.0, row.Overspent)
	require.NotNil(t, row.PercentUsed)
	assert.Equal(t, 150.0, *row.PercentUsed)
}

func TestCompareBudgets_NoBudget(t *testing.T) {
	actual := map[string]float64{models.CategoryShopping: 30}
	rows := CompareBudgets(models.Categories(), nil, actual, "2024-06")
	require.Len(t, rows, 1)
	assert.Equal(t, BudgetComparison{
		Category:     models.CategoryShopping,
		BudgetAmount: 0,
		ActualAmount: 30,
		Remaining:    0,
		Overspent:    30,
	}, rows[0])
	assert.Nil(t, rows[0].PercentUsed)
}

func TestCompareBudgets_OrderAndExclusion(t *testing.T) {
	budgets := []models.Budget{
		{Category: models.CategoryTravel, Amount: 200, Month: "2024-06"},
		{Category: models.CategoryFood, Amount: 100, Month: "2024-06"},
		{Category: models.CategoryHealthcare, Amount: 80, Month: "2024-05"}, // 其他月份忽略
	}
	actual := map[string]float64{models.CategoryFood: 40, "Pets": 12}

	rows := CompareBudgets(models.Categories(), budgets, actual, "2024-06")
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Category)
		assert.True(t, r.Remaining == 0 || r.Overspent == 0)
	}
	assert.Equal(t, []string{models.CategoryFood, models.CategoryTravel, "Pets"}, names)
	assert.Equal(t, 60.0, rows[0].Remaining)
	assert.Equal(t, 200.0, rows[1].Remaining)

	overview := Overview(rows)
	assert.Equal(t, BudgetOverview{TotalBudget: 300, TotalSpent: 52, CategoriesOverBudget: 1}, overview)
}

func TestCompareBudgets_RemainingOverspentExclusive(t *testing.T) {
	for _, spent := range []float64{0.01, 50, 99.99, 100, 100.01, 1000} {
		rows := CompareBudgets(models.Categories(),
			[]models.Budget{{Category: models.CategoryFood, Amount: 100, Month: "2024-06"}},
			map[string]float64{models.CategoryFood: spent}, "2024-06")
		require.Len(t, rows, 1)
		r := rows[0]
		assert.False(t, r.Remaining > 0 && r.Overspent > 0, "spent=%v", spent)
		assert.GreaterOrEqual(t, r.Remaining, 0.0)
		assert.GreaterOrEqual(t, r.Overspent, 0.0)
	}
}

func TestRecentTransactions(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 8; i++ {
		txs = append(txs, tx(float64(i+1), models.TypeExpense, models.CategoryFood, day(2024, 6, 1+i)))
	}
	recent := RecentTransactions(txs, 0)
	require.Len(t, recent, 5)
	assert.Equal(t, 1.0, recent[0].Amount)
	assert.Equal(t, 5.0, recent[4].Amount)

	assert.Len(t, RecentTransactions(txs[:2], 5), 2)
	assert.Empty(t, RecentTransactions(nil, 5))
}

func TestFilterTransactions(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Weekly groceries", Category: models.CategoryGroceries, Type: models.TypeExpense},
		{Description: "Salary", Category: models.CategoryOther, Type: models.TypeIncome},
		{Description: "Train ticket", Category: models.CategoryTransport, Type: models.TypeExpense},
	}

	assert.Len(t, FilterTransactions(txs, Filter{}), 3)
	assert.Len(t, FilterTransactions(txs, Filter{Search: "GROC"}), 1)
	assert.Len(t, FilterTransactions(txs, Filter{Search: "transport"}), 1)
	assert.Len(t, FilterTransactions(txs, Filter{Type: models.TypeExpense}), 2)
	got := FilterTransactions(txs, Filter{Type: models.TypeExpense, Category: models.CategoryTransport})
	require.Len(t, got, 1)
	assert.Equal(t, "Train ticket", got[0].Description)
	assert.True(t, Filter{Search: "  "}.IsEmpty())
}
