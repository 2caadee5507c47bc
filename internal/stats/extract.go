package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/parser"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
)

var (
	// ErrColumnNotFound 选择的列标识不在表结构中
	ErrColumnNotFound = errors.New("列不存在")
	// ErrInvalidRange 起始列在结束列之后
	ErrInvalidRange = errors.New("起始列在结束列之后")
)

// Result 一次提取的产物：记录清单 + 无法解析而跳过的格数
type Result struct {
	Records []model.ParsedRecord `json:"records"`
	Skipped int                  `json:"skipped"`
}

// ColumnRange 将起止列标识解析为连续列下标序列
// 校验先于任何提取：列不存在或起止颠倒直接报错，不做部分提取
func ColumnRange(schema model.Schema, startID, endID string) ([]int, error) {
	start := schema.Index(startID)
	if start < 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, startID)
	}
	end := schema.Index(endID)
	if end < 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, endID)
	}
	if start > end {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, startID, endID)
	}

	cols := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		cols = append(cols, i)
	}
	return cols, nil
}

// Extract 网格课表提取：按列遍历，维护“当前日期”，逐格解析
// 日期标记行只推进当前日期，不产出记录；当前日期未建立或超出范围的格子静默跳过。
// 输出顺序固定为列外层、行内层，保证可复现。
func Extract(sheet *model.CleanSheet, cols []int, from, to time.Time, r *rules.RuleSet) *Result {
	result := &Result{Records: []model.ParsedRecord{}}

	for _, col := range cols {
		if col < 0 || col >= len(sheet.Schema) {
			continue
		}
		colID := sheet.Schema[col]

		var current time.Time
		hasDate := false

		for i := range sheet.Rows {
			cell := sheet.Cell(i, col)
			if d, ok := parser.CellDate(cell); ok {
				current = d
				hasDate = true
				continue
			}
			if !hasDate {
				continue
			}
			if current.Before(from) || current.After(to) {
				continue
			}
			if cell.IsBlank() {
				continue
			}

			rec, ok := parser.ParseCell(cell.String(), r)
			if !ok {
				result.Skipped++
				continue
			}
			rec.Date = current.Format("2006-01-02")
			rec.Column = colID
			result.Records = append(result.Records, *rec)
		}
	}

	return result
}

// ExtractFlat 平面记录表提取：每行直接取（姓名、类别、课时数）三列
// 课时列非数字按 0 计入而非丢行，保证教师在汇总里可见；姓名空白或为 "0" 的行跳过。
func ExtractFlat(sheet *model.CleanSheet, nameCol, categoryCol, countCol string) (*Result, error) {
	for _, id := range []string{nameCol, categoryCol, countCol} {
		if !sheet.Schema.Contains(id) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
		}
	}

	ni := sheet.Schema.Index(nameCol)
	ci := sheet.Schema.Index(categoryCol)
	hi := sheet.Schema.Index(countCol)

	result := &Result{Records: []model.ParsedRecord{}}
	for i := range sheet.Rows {
		name := parser.StripWhitespace(sheet.Cell(i, ni).String())
		if name == "" || name == "0" {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, model.ParsedRecord{
			Teacher:  name,
			Category: parser.StripWhitespace(sheet.Cell(i, ci).String()),
			Hours:    sheet.Cell(i, hi).AsFloat(),
			Column:   countCol,
		})
	}

	return result, nil
}
