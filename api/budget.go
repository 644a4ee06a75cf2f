package api

import (
	"context"
	"net/http"

	"expensewise/config"
	"expensewise/events"
	"expensewise/models"
	"expensewise/report"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// BudgetHandler 预算处理器
type BudgetHandler struct {
	Deps
}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler(deps Deps) *BudgetHandler {
	return &BudgetHandler{Deps: deps.withDefaults()}
}

// BudgetRequest 设置 / 更新预算请求
type BudgetRequest struct {
	Category string  `json:"category" example:"Food & Dining"`
	Amount   float64 `json:"amount" example:"500"`
	Month    string  `json:"month" example:"2024-06"`
}

// ComparisonResponse 预算执行情况
type ComparisonResponse struct {
	Month       string                    `json:"month" example:"2024-06"`
	Comparisons []report.BudgetComparison `json:"comparisons"`
	Overview    report.BudgetOverview     `json:"overview"`
}

// List 获取预算列表
// @Summary 获取预算列表
// @Tags 预算
// @Produce json
// @Param month query string false "月份 YYYY-MM"
// @Success 200 {array} models.Budget "获取成功"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Router /budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.Store.ListBudgets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Budget", "Failed to fetch budgets")
		return
	}
	if q := c.Query("month"); q != "" {
		month, _, err := parseMonthQuery(q, h.Now())
		if err != nil {
			respondError(c, err, "Budget", "Invalid month")
			return
		}
		budgets = report.BudgetsForMonth(budgets, month)
	}
	Success(c, budgets)
}

// Set 设置分类月度预算
// @Summary 设置预算
// @Description 按 (category, month) 创建或覆盖金额；月份缺省为当前月。新建返回 201，覆盖返回 200
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetRequest true "预算"
// @Success 201 {object} models.Budget "创建成功"
// @Success 200 {object} models.Budget "覆盖成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /budgets [post]
func (h *BudgetHandler) Set(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}
	b := models.Budget{Category: req.Category, Amount: req.Amount, Month: req.Month}
	b.Normalize()
	if b.Month == "" {
		b.Month = models.MonthKey(h.Now())
	}
	if err := models.Validate(b); err != nil {
		respondError(c, err, "Budget", "Invalid budget")
		return
	}

	saved, created, err := h.Store.UpsertBudget(c.Request.Context(), b)
	if err != nil {
		respondError(c, err, "Budget", "Failed to save budget")
		return
	}

	h.publish(c.Request.Context(), events.BudgetUpserted, saved.ID, saved)
	h.checkBudgetMonth(saved)
	if created {
		Created(c, saved)
		return
	}
	Success(c, saved)
}

// Update 整体更新预算
// @Summary 更新预算
// @Tags 预算
// @Accept json
// @Produce json
// @Param id path string true "预算ID"
// @Param request body BudgetRequest true "预算"
// @Success 200 {object} models.Budget "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "预算不存在"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}
	b := models.Budget{Category: req.Category, Amount: req.Amount, Month: req.Month}
	b.Normalize()
	if err := models.Validate(b); err != nil {
		respondError(c, err, "Budget", "Invalid budget")
		return
	}

	updated, err := h.Store.UpdateBudget(c.Request.Context(), c.Param("id"), b)
	if err != nil {
		respondError(c, err, "Budget", "Failed to update budget")
		return
	}

	h.publish(c.Request.Context(), events.BudgetUpdated, updated.ID, updated)
	h.checkBudgetMonth(updated)
	Success(c, updated)
}

// Delete 删除预算
// @Summary 删除预算
// @Tags 预算
// @Produce json
// @Param id path string true "预算ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} ErrorResponse "预算不存在"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteBudget(c.Request.Context(), id); err != nil {
		respondError(c, err, "Budget", "Failed to delete budget")
		return
	}
	h.publish(c.Request.Context(), events.BudgetDeleted, id, nil)
	Message(c, "Budget deleted successfully")
}

// Comparison 预算与实际支出对比
// @Summary 预算执行情况
// @Description 指定月份（缺省为当前月）各分类的预算、实际支出、剩余与超支
// @Tags 预算
// @Produce json
// @Param month query string false "月份 YYYY-MM"
// @Success 200 {object} ComparisonResponse "获取成功"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Router /budgets/comparison [get]
func (h *BudgetHandler) Comparison(c *gin.Context) {
	month, ref, err := parseMonthQuery(c.Query("month"), h.Now())
	if err != nil {
		respondError(c, err, "Budget", "Invalid month")
		return
	}

	txs, budgets, err := loadAll(c.Request.Context(), h.Deps)
	if err != nil {
		respondError(c, err, "Budget", "Failed to load budgets")
		return
	}

	rows := report.CompareBudgets(models.Categories(), budgets, report.ActualSpending(txs, ref), month)
	c.JSON(http.StatusOK, ComparisonResponse{
		Month:       month,
		Comparisons: rows,
		Overview:    report.Overview(rows),
	})
}

func (h *BudgetHandler) checkBudgetMonth(b models.Budget) {
	ref, err := models.ParseMonth(b.Month, h.Now().Location())
	if err != nil {
		return
	}
	h.checkBudget(b.Category, ref)
}

// loadAll 并发读取全部收支记录与预算
func loadAll(ctx context.Context, d Deps) ([]models.Transaction, []models.Budget, error) {
	var (
		txs     []models.Transaction
		budgets []models.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = d.Store.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = d.Store.ListBudgets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return txs, budgets, nil
}
