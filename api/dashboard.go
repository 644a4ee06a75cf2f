package api

import (
	"strings"
	"time"

	"expensewise/models"
	"expensewise/report"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	Deps
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(deps Deps) *DashboardHandler {
	return &DashboardHandler{Deps: deps.withDefaults()}
}

// DashboardResponse 仪表盘数据
type DashboardResponse struct {
	Date               string                    `json:"date" example:"2024-06-15"`
	Summary            report.Summary            `json:"summary"`
	MonthlyExpenses    []report.MonthlyExpense   `json:"monthlyExpenses"`
	CategoryExpenses   []report.CategoryTotal    `json:"categoryExpenses"`
	RecentTransactions []models.Transaction      `json:"recentTransactions"`
	Budget             report.BudgetOverview     `json:"budgetOverview"`
	BudgetComparison   []report.BudgetComparison `json:"budgetComparison"`
}

// Get 获取仪表盘数据
// @Summary 仪表盘
// @Description 当月收支汇总、近 6 个月支出趋势、分类支出占比、最近 5 条记录与当月预算概况
// @Tags 统计
// @Produce json
// @Param date query string false "参考日期 YYYY-MM-DD，缺省为今天"
// @Success 200 {object} DashboardResponse "获取成功"
// @Failure 400 {object} ErrorResponse "日期格式错误"
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	ref := h.Now()
	if q := strings.TrimSpace(c.Query("date")); q != "" {
		t, err := parseDate(q)
		if err != nil {
			respondError(c, err, "Dashboard", "Invalid date")
			return
		}
		ref = t
	}

	txs, budgets, err := loadAll(c.Request.Context(), h.Deps)
	if err != nil {
		respondError(c, err, "Dashboard", "Failed to load dashboard")
		return
	}

	month := models.MonthKey(ref)
	rows := report.CompareBudgets(models.Categories(), budgets, report.ActualSpending(txs, ref), month)
	Success(c, DashboardResponse{
		Date:               ref.Format(time.DateOnly),
		Summary:            report.CurrentMonthSummary(txs, ref),
		MonthlyExpenses:    report.MonthlyExpenses(txs, ref),
		CategoryExpenses:   report.SortedCategoryExpenses(txs),
		RecentTransactions: report.RecentTransactions(txs, 5),
		Budget:             report.Overview(rows),
		BudgetComparison:   rows,
	})
}
