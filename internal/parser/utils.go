package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

var (
	reDateToken   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	reDateAny     = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`)
	reDateMarker  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})(星期[一二三四五六日天])?$`)
	reWeekLabel   = regexp.MustCompile(`^第?\d{1,2}周$`)
	reTrailingNum = regexp.MustCompile(`\d+(?:\.\d+)?$`)
)

// StripWhitespace 去除全部空白字符（含全角空格、换行、制表符）
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseDateToken 解析严格的日期标记（YYYY-MM-DD / YYYY/MM/DD，月日可一位）
func ParseDateToken(text string) (time.Time, bool) {
	m := reDateToken.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[1], m[2], m[3])
}

// ParseDateMarker 解析日期标记行：日期后可跟星期标签（如 "2026-01-05星期一"）
func ParseDateMarker(text string) (time.Time, bool) {
	m := reDateMarker.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[1], m[2], m[3])
}

// ContainsDateToken 文本任意位置是否出现日期标记
func ContainsDateToken(text string) bool {
	return reDateAny.MatchString(text)
}

// IsWeekLabel 是否为“第N周”类标签
func IsWeekLabel(text string) bool {
	return reWeekLabel.MatchString(text)
}

func buildDate(ys, ms, ds string) (time.Time, bool) {
	var y, m, d int
	for _, r := range ys {
		y = y*10 + int(r-'0')
	}
	for _, r := range ms {
		m = m*10 + int(r-'0')
	}
	for _, r := range ds {
		d = d*10 + int(r-'0')
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// 2月30日之类的进位视为非法日期
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, false
	}
	return t, true
}

// CellDate 单元格的日期标记值：原生日期或文本日期标记
func CellDate(c model.CellValue) (time.Time, bool) {
	if c.Type == model.CellDate {
		return c.Date, true
	}
	if c.Type == model.CellText {
		return ParseDateMarker(StripWhitespace(c.Text))
	}
	return time.Time{}, false
}
