package api

import (
	"expensewise/config"
	"expensewise/events"
	"expensewise/models"
	"expensewise/report"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct {
	Deps
}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler(deps Deps) *TransactionHandler {
	return &TransactionHandler{Deps: deps.withDefaults()}
}

// TransactionRequest 创建 / 更新收支记录请求
type TransactionRequest struct {
	Amount      float64 `json:"amount" example:"25.5"`
	Description string  `json:"description" example:"Lunch with team"`
	Category    string  `json:"category" example:"Food & Dining"`
	Type        string  `json:"type" example:"expense" enums:"expense,income"`
	Date        string  `json:"date" example:"2024-06-15"`
}

// toModel 转换为领域模型，create 时缺省日期取当前时间
func (r TransactionRequest) toModel(create bool, h *TransactionHandler) (models.Transaction, error) {
	tx := models.Transaction{
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Type:        models.TransactionType(r.Type),
	}
	switch {
	case r.Date != "":
		date, err := parseDate(r.Date)
		if err != nil {
			return tx, err
		}
		tx.Date = date
	case create:
		tx.Date = h.Now()
	}
	tx.Normalize()
	return tx, models.Validate(tx)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 按日期倒序返回全部收支记录，可按关键字、分类、类型筛选
// @Tags 收支记录
// @Produce json
// @Param search query string false "关键字（描述或分类）"
// @Param category query string false "分类"
// @Param type query string false "类型" Enums(expense, income)
// @Success 200 {array} models.Transaction "获取成功"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var f report.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid query parameters"))
		return
	}

	txs, err := h.Store.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Transaction", "Failed to fetch transactions")
		return
	}
	if !f.IsEmpty() {
		txs = report.FilterTransactions(txs, f)
	}
	Success(c, txs)
}

// Get 获取单条收支记录
// @Summary 获取单条收支记录
// @Tags 收支记录
// @Produce json
// @Param id path string true "记录ID"
// @Success 200 {object} models.Transaction "获取成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.Store.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Transaction", "Failed to fetch transaction")
		return
	}
	Success(c, tx)
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 日期缺省为当前时间
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "收支记录"
// @Success 201 {object} models.Transaction "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}
	tx, err := req.toModel(true, h)
	if err != nil {
		respondError(c, err, "Transaction", "Invalid transaction")
		return
	}

	created, err := h.Store.CreateTransaction(c.Request.Context(), tx)
	if err != nil {
		respondError(c, err, "Transaction", "Failed to create transaction")
		return
	}

	h.publish(c.Request.Context(), events.TransactionCreated, created.ID, created)
	if created.IsExpense() {
		h.checkBudget(created.Category, created.Date)
	}
	Created(c, created)
}

// Update 整体更新收支记录
// @Summary 更新收支记录
// @Description 全量替换，校验规则与创建一致
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param id path string true "记录ID"
// @Param request body TransactionRequest true "收支记录"
// @Success 200 {object} models.Transaction "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}
	tx, err := req.toModel(false, h)
	if err != nil {
		respondError(c, err, "Transaction", "Invalid transaction")
		return
	}

	updated, err := h.Store.UpdateTransaction(c.Request.Context(), c.Param("id"), tx)
	if err != nil {
		respondError(c, err, "Transaction", "Failed to update transaction")
		return
	}

	h.publish(c.Request.Context(), events.TransactionUpdated, updated.ID, updated)
	if updated.IsExpense() {
		h.checkBudget(updated.Category, updated.Date)
	}
	Success(c, updated)
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Tags 收支记录
// @Produce json
// @Param id path string true "记录ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err, "Transaction", "Failed to delete transaction")
		return
	}
	h.publish(c.Request.Context(), events.TransactionDeleted, id, nil)
	Message(c, "Transaction deleted successfully")
}
