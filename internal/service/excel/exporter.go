package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

// Exporter 课时汇总导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 将透视汇总与审计明细写入工作簿
// 第一张表为 教师×类别 汇总（含合计列），第二张表为逐条记录明细
func (e *Exporter) Export(pivot *model.PivotSummary, audit []model.ParsedRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	summarySheet := "课时汇总"
	f.SetSheetName("Sheet1", summarySheet)

	table := pivot.Table()
	for j, col := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(summarySheet, cell, col)
	}
	for i, row := range table.Rows {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(summarySheet, cell, val)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(summarySheet, 1, 1, headerStyle)
	f.SetColWidth(summarySheet, "A", "A", 16)
	if len(table.Columns) > 1 {
		endCol, _ := excelize.ColumnNumberToName(len(table.Columns))
		f.SetColWidth(summarySheet, "B", endCol, 12)
	}

	auditSheet := "明细"
	f.NewSheet(auditSheet)
	auditHeaders := []string{"教师", "类别", "课时", "日期", "来源列"}
	for j, h := range auditHeaders {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(auditSheet, cell, h)
	}
	for i, rec := range audit {
		row := i + 2
		f.SetCellValue(auditSheet, fmt.Sprintf("A%d", row), rec.Teacher)
		f.SetCellValue(auditSheet, fmt.Sprintf("B%d", row), rec.Category)
		f.SetCellValue(auditSheet, fmt.Sprintf("C%d", row), rec.Hours)
		f.SetCellValue(auditSheet, fmt.Sprintf("D%d", row), rec.Date)
		f.SetCellValue(auditSheet, fmt.Sprintf("E%d", row), rec.Column)
	}
	f.SetRowStyle(auditSheet, 1, 1, headerStyle)

	return f, nil
}
