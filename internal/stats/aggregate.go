package stats

import (
	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

// Aggregate 将课时记录透视为 教师×类别 汇总表
// 教师行与类别列均按首见顺序排列（确定性口径）；缺省格补 0；
// 合计列恒等于该行各类别之和。空记录清单得到零行汇总，不是错误。
func Aggregate(records []model.ParsedRecord) *model.PivotSummary {
	p := &model.PivotSummary{
		Teachers:   []string{},
		Categories: []string{},
		Cells:      make(map[string]map[string]float64),
		Totals:     make(map[string]float64),
	}

	catSeen := make(map[string]bool)
	for _, rec := range records {
		row, ok := p.Cells[rec.Teacher]
		if !ok {
			row = make(map[string]float64)
			p.Cells[rec.Teacher] = row
			p.Teachers = append(p.Teachers, rec.Teacher)
		}
		if !catSeen[rec.Category] {
			catSeen[rec.Category] = true
			p.Categories = append(p.Categories, rec.Category)
		}
		row[rec.Category] += rec.Hours
		p.Totals[rec.Teacher] += rec.Hours
	}

	return p
}
