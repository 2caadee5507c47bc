package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
)

// ParseCell 解析一格课表文本为课时记录
// 纯函数：任何输入要么得到一条合法记录，要么返回 (nil, false)，绝不 panic。
// 解析按固定顺序逐层尝试，命中即返回：
//  1. 去除全部空白
//  2. 忽略集等值匹配（0/nan/星期/非授课活动）
//  3. 日期标记、周次标签（它们是行列标记，不是课时）
//  4. 提取尾部数字作为课时数（整串为数字则拒绝）
//  5. 年级词切分（姓名+年级+余文）
//  6. 已知课型后缀切分
//  7. 兜底：整串作为姓名，类别取默认课型
func ParseCell(raw string, r *rules.RuleSet) (*model.ParsedRecord, bool) {
	text := StripWhitespace(raw)
	if text == "" {
		return nil, false
	}

	if r.IsIgnored(text) {
		return nil, false
	}

	if _, ok := ParseDateMarker(text); ok {
		return nil, false
	}
	if IsWeekLabel(text) {
		return nil, false
	}

	hours := 1.0
	if loc := reTrailingNum.FindStringIndex(text); loc != nil {
		if loc[0] == 0 {
			// 纯数字单元格不构成课时记录
			return nil, false
		}
		v, err := strconv.ParseFloat(text[loc[0]:], 64)
		if err != nil || v <= 0 {
			return nil, false
		}
		hours = v
		text = text[:loc[0]]
	}

	if name, category, ok := r.SplitGrade(text); ok {
		return &model.ParsedRecord{Teacher: name, Category: category, Hours: hours}, true
	}

	if name, category, ok := r.MatchSuffix(text); ok {
		return &model.ParsedRecord{Teacher: name, Category: category, Hours: hours}, true
	}

	if utf8.RuneCountInString(text) >= 2 {
		return &model.ParsedRecord{Teacher: text, Category: r.DefaultCategory, Hours: hours}, true
	}

	return nil, false
}
