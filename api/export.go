package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"expensewise/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	Deps
}

// NewExportHandler 创建导出处理器
func NewExportHandler(deps Deps) *ExportHandler {
	return &ExportHandler{Deps: deps.withDefaults()}
}

var exportHeaders = []string{"ID", "Date", "Type", "Category", "Description", "Amount"}

// exportRange 解析 start / end（YYYY-MM-DD，均可省略），end 包含当天
func exportRange(c *gin.Context) (start, end time.Time, label string, err error) {
	startStr := strings.TrimSpace(c.Query("start"))
	endStr := strings.TrimSpace(c.Query("end"))
	if startStr != "" {
		if start, err = time.ParseInLocation(time.DateOnly, startStr, time.Local); err != nil {
			return start, end, "", models.NewValidationError("start", "start must be in YYYY-MM-DD format")
		}
	}
	if endStr != "" {
		if end, err = time.ParseInLocation(time.DateOnly, endStr, time.Local); err != nil {
			return start, end, "", models.NewValidationError("end", "end must be in YYYY-MM-DD format")
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return start, end, "", models.NewValidationError("end", "end must not be before start")
	}
	label = "all"
	if startStr != "" || endStr != "" {
		label = startStr + "_" + endStr
	}
	return start, end, label, nil
}

func (h *ExportHandler) transactionsInRange(c *gin.Context) ([]models.Transaction, string, bool) {
	start, end, label, err := exportRange(c)
	if err != nil {
		respondError(c, err, "Transaction", "Invalid range")
		return nil, "", false
	}
	txs, err := h.Store.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Transaction", "Failed to fetch transactions")
		return nil, "", false
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !start.IsZero() && tx.Date.Before(start) {
			continue
		}
		if !end.IsZero() && tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, label, true
}

func exportRow(tx models.Transaction) []string {
	return []string{
		tx.ID,
		tx.Date.Format("2006-01-02 15:04:05"),
		string(tx.Type),
		tx.Category,
		tx.Description,
		fmt.Sprintf("%.2f", tx.Amount),
	}
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出 CSV
// @Tags 导出
// @Produce text/csv
// @Param start query string false "开始日期 (2024-01-01)"
// @Param end query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, label, ok := h.transactionsInRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM，Excel 打开时按 UTF-8 识别
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}
	for _, tx := range txs {
		if err := writer.Write(exportRow(tx)); err != nil {
			InternalError(c, "Failed to generate CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.csv", label))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX 导出收支记录为 Excel
// @Summary 导出 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string false "开始日期 (2024-01-01)"
// @Param end query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, label, ok := h.transactionsInRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{Border: border})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})

	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "D", 18)
	f.SetColWidth(sheet, "E", "E", 32)
	f.SetColWidth(sheet, "F", "F", 12)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	var expenses, income float64
	for i, tx := range txs {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(tx.Type))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tx.Category)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.Description)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tx.Amount)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		if tx.IsIncome() {
			income += tx.Amount
		} else {
			expenses += tx.Amount
		}
	}

	summaryRow := len(txs) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%d records", len(txs)))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), "Total expenses")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow), expenses)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow+1), "Total income")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow+1), income)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow+1), summaryStyle)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.xlsx", label))
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
		InternalError(c, "Failed to generate Excel file")
		return
	}
}
