package parser

import (
	"time"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

// dateScanRows 每列探测代表日期时检查的前导行数
const dateScanRows = 4

// MapDates 为网格课表的指定列建立“列标识 → 代表日期”映射
// 每列扫描前几行，第一个日期标记即该列的代表日期；无日期标记的列不入映射
func MapDates(sheet *model.CleanSheet, cols []int) map[string]time.Time {
	mapping := make(map[string]time.Time)

	for _, col := range cols {
		if col < 0 || col >= len(sheet.Schema) {
			continue
		}
		limit := dateScanRows
		if len(sheet.Rows) < limit {
			limit = len(sheet.Rows)
		}
		for i := 0; i < limit; i++ {
			if d, ok := CellDate(sheet.Cell(i, col)); ok {
				mapping[sheet.Schema[col]] = d
				break
			}
		}
	}

	return mapping
}

// DateBounds 映射中的最早与最晚日期，作为可选日期范围的边界
func DateBounds(mapping map[string]time.Time) (min, max time.Time, ok bool) {
	for _, d := range mapping {
		if !ok {
			min, max = d, d
			ok = true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, ok
}
