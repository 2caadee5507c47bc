package parser

import (
	"strings"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
)

// classifyScanRows 分类时检查的前导行数
const classifyScanRows = 5

// Classify 判定工作表形态：网格课表或平面记录表
// 启发式规则：前 5 行文本出现星期标签或日期标记即视为网格课表。
// 已知局限：平面表前几行恰好嵌有日期样文本时会被误判为网格，
// 统计入口依赖该确定性行为，这里有意不做进一步修正。
func Classify(sheet *model.CleanSheet, r *rules.RuleSet) model.SheetKind {
	limit := classifyScanRows
	if len(sheet.Rows) < limit {
		limit = len(sheet.Rows)
	}

	for i := 0; i < limit; i++ {
		var sb strings.Builder
		for _, cell := range sheet.Rows[i] {
			sb.WriteString(cell.String())
			if cell.Type == model.CellDate {
				return model.SheetKindGrid
			}
		}
		text := sb.String()
		if ContainsDateToken(text) {
			return model.SheetKindGrid
		}
		for _, day := range r.Weekdays {
			if strings.Contains(text, day) {
				return model.SheetKindGrid
			}
		}
	}

	return model.SheetKindFlat
}
