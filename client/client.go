// Package client 是 REST 接口的类型化客户端，并提供仅在服务端确认后才更新的本地状态镜像。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"expensewise/models"
	"expensewise/report"
)

// APIError 非 2xx 响应
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound 是否为 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// TransactionInput 创建 / 更新收支记录的请求体
type TransactionInput struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Type        models.TransactionType `json:"type"`
	Date        *time.Time             `json:"date,omitempty"`
}

// BudgetInput 设置 / 更新预算的请求体
type BudgetInput struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month,omitempty"`
}

// Dashboard 仪表盘响应
type Dashboard struct {
	Date               string                    `json:"date"`
	Summary            report.Summary            `json:"summary"`
	MonthlyExpenses    []report.MonthlyExpense   `json:"monthlyExpenses"`
	CategoryExpenses   []report.CategoryTotal    `json:"categoryExpenses"`
	RecentTransactions []models.Transaction      `json:"recentTransactions"`
	Budget             report.BudgetOverview     `json:"budgetOverview"`
	BudgetComparison   []report.BudgetComparison `json:"budgetComparison"`
}

// Client REST 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option 客户端选项
type Option func(*Client)

// WithHTTPClient 指定 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New 创建客户端，baseURL 形如 http://localhost:5000/api
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return resp.StatusCode, apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// ListTransactions 获取全部收支记录（日期倒序）
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	_, err := c.do(ctx, http.MethodGet, "/transactions", nil, &out)
	return out, err
}

// CreateTransaction 创建收支记录
func (c *Client) CreateTransaction(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	var out models.Transaction
	_, err := c.do(ctx, http.MethodPost, "/transactions", in, &out)
	return out, err
}

// UpdateTransaction 整体更新收支记录
func (c *Client) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (models.Transaction, error) {
	var out models.Transaction
	_, err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), in, &out)
	return out, err
}

// DeleteTransaction 删除收支记录
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil)
	return err
}

// ListBudgets 获取预算，month 为空表示全部
func (c *Client) ListBudgets(ctx context.Context, month string) ([]models.Budget, error) {
	path := "/budgets"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}
	var out []models.Budget
	_, err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// SetBudget 按 (category, month) 创建或覆盖预算，created 表示是否新建
func (c *Client) SetBudget(ctx context.Context, in BudgetInput) (models.Budget, bool, error) {
	var out models.Budget
	status, err := c.do(ctx, http.MethodPost, "/budgets", in, &out)
	return out, status == http.StatusCreated, err
}

// UpdateBudget 整体更新预算
func (c *Client) UpdateBudget(ctx context.Context, id string, in BudgetInput) (models.Budget, error) {
	var out models.Budget
	_, err := c.do(ctx, http.MethodPut, "/budgets/"+url.PathEscape(id), in, &out)
	return out, err
}

// DeleteBudget 删除预算
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/budgets/"+url.PathEscape(id), nil, nil)
	return err
}

// Categories 获取分类列表
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	_, err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

// Dashboard 获取仪表盘，date 为零值时使用服务端当天
func (c *Client) Dashboard(ctx context.Context, date time.Time) (Dashboard, error) {
	path := "/dashboard"
	if !date.IsZero() {
		path += "?date=" + date.Format(time.DateOnly)
	}
	var out Dashboard
	_, err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
