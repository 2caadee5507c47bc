package parser

import (
	"fmt"
	"strings"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

// headerScanLimit 表头探测最多检查的前导行数
const headerScanLimit = 10

// headerKeywords 表头行关键词：命中任意一个即认定该行为表头
var headerKeywords = []string{
	"姓名", "名字", "教师", "老师", "科目", "学科", "班级", "序号", "类别", "课时", "节数",
}

// NormalizeHeader 探测表头行并产出规整列标识
// 未检出表头时返回 headerRow = -1（不消费任何行，列名用占位符）
func NormalizeHeader(raw *model.RawSheet) (model.Schema, int) {
	width := sheetWidth(raw)
	if width == 0 {
		return model.Schema{}, -1
	}

	headerRow := -1
	limit := headerScanLimit
	if len(raw.Rows) < limit {
		limit = len(raw.Rows)
	}
	for i := 0; i < limit; i++ {
		if rowLooksLikeHeader(raw.Rows[i]) {
			headerRow = i
			break
		}
	}

	var labels []string
	if headerRow >= 0 {
		labels = make([]string, width)
		for j, cell := range raw.Rows[headerRow] {
			if j < width {
				labels[j] = StripWhitespace(cell.String())
			}
		}
	} else {
		labels = make([]string, width)
	}

	schema := make(model.Schema, 0, width)
	seen := make(map[string]bool, width)
	for j := 0; j < width; j++ {
		name := labels[j]
		if name == "" || strings.EqualFold(name, "nan") || hasUnnamedPrefix(name) {
			name = fmt.Sprintf("unnamed_%d", j+1)
		}
		// 重名列追加序号直到唯一
		if seen[name] {
			for k := 1; ; k++ {
				candidate := fmt.Sprintf("%s_%d", name, k)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		schema = append(schema, name)
	}

	return schema, headerRow
}

// Clean 规整一张原始表：消费表头行、剔除全空行与全空列
func Clean(raw *model.RawSheet) *model.CleanSheet {
	schema, headerRow := NormalizeHeader(raw)
	width := len(schema)

	sheet := &model.CleanSheet{
		Name:      raw.Name,
		Schema:    model.Schema{},
		HeaderRow: headerRow,
	}
	if width == 0 {
		return sheet
	}

	start := 0
	if headerRow >= 0 {
		start = headerRow + 1
	}

	rows := make([][]model.CellValue, 0, len(raw.Rows))
	for i := start; i < len(raw.Rows); i++ {
		row := make([]model.CellValue, width)
		blank := true
		for j := 0; j < width; j++ {
			if j < len(raw.Rows[i]) {
				row[j] = raw.Rows[i][j]
			} else {
				row[j] = model.BlankCell()
			}
			if !row[j].IsBlank() {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	// 全空列剔除后重建 schema
	keep := make([]int, 0, width)
	for j := 0; j < width; j++ {
		empty := true
		for _, row := range rows {
			if !row[j].IsBlank() {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, j)
		}
	}

	pruned := make(model.Schema, 0, len(keep))
	for _, j := range keep {
		pruned = append(pruned, schema[j])
	}
	outRows := make([][]model.CellValue, 0, len(rows))
	for _, row := range rows {
		out := make([]model.CellValue, 0, len(keep))
		for _, j := range keep {
			out = append(out, row[j])
		}
		outRows = append(outRows, out)
	}

	sheet.Schema = pruned
	sheet.Rows = outRows
	return sheet
}

func sheetWidth(raw *model.RawSheet) int {
	width := 0
	for _, row := range raw.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func rowLooksLikeHeader(row []model.CellValue) bool {
	for _, cell := range row {
		text := StripWhitespace(cell.String())
		if text == "" {
			continue
		}
		for _, kw := range headerKeywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

func hasUnnamedPrefix(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "unnamed")
}
