package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"homeledger/middleware"
	"homeledger/models"
	"homeledger/repository"
	"homeledger/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	stats *service.StatisticsService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(stats *service.StatisticsService) *ExportHandler {
	return &ExportHandler{stats: stats}
}

var exportHeaders = []string{"ID", "日期", "类型", "描述", "金额", "状态", "成员", "类别"}

var typeLabels = map[models.TransactionType]string{
	models.TransactionTypeRevenue: "收入",
	models.TransactionTypeExpense: "支出",
}

var statusLabels = map[models.PaymentStatus]string{
	models.StatusOpen: "未付",
	models.StatusPaid: "已付",
}

func exportRow(r repository.LedgerRow) []string {
	member := r.MemberName
	if member == "" {
		member = r.Username
	}
	category := models.NoCategoryLabel
	if r.CategoryName != nil && *r.CategoryName != "" {
		category = *r.CategoryName
	}
	return []string{
		fmt.Sprintf("%d", r.ID),
		r.Date.Format(models.DateLayout),
		typeLabels[r.Type],
		r.Description,
		r.Value.StringFixed(2),
		statusLabels[r.Status],
		member,
		category,
	}
}

// monthRows 读取导出的月份和数据，失败时已写入响应
func (h *ExportHandler) monthRows(c *gin.Context) (int, int, []repository.LedgerRow, bool) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return 0, 0, nil, false
	}
	rows, err := h.stats.MonthRows(c.Request.Context(), middleware.GetCurrentHomeID(c), year, month)
	if err != nil {
		respondError(c, err, "查询数据失败")
		return 0, 0, nil, false
	}
	return year, month, rows, true
}

// ExportCSV 导出某月账目为 CSV
// @Summary 导出账目 CSV
// @Description 导出家庭某月的全部账目
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param year query int false "年，默认今年"
// @Param month query int false "月，默认本月"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	year, month, rows, ok := h.monthRows(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, r := range rows {
		if err := writer.Write(exportRow(r)); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("ledger_%04d-%02d.csv", year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出某月账目为 Excel
// @Summary 导出账目 Excel
// @Description 导出家庭某月的全部账目，末行为收入、支出合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param X-Home-ID header int true "家庭 ID"
// @Param year query int false "年，默认今年"
// @Param month query int false "月，默认本月"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	year, month, rows, ok := h.monthRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "账目"
	f.SetSheetName("Sheet1", sheetName)

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
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "H", 14)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	revenue, expense := decimal.Zero, decimal.Zero
	for i, r := range rows {
		row := i + 2
		for col, v := range exportRow(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		// 金额列写数值，便于在表格中求和
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Value.InexactFloat64())
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)

		switch r.Type {
		case models.TransactionTypeRevenue:
			revenue = revenue.Add(r.Value)
		case models.TransactionTypeExpense:
			expense = expense.Add(r.Value)
		}
	}

	summaryRow := len(rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow),
		fmt.Sprintf("收入 %s / 支出 %s / 结余 %s", revenue.StringFixed(2), expense.StringFixed(2), revenue.Sub(expense).StringFixed(2)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("ledger_%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
