package rules

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleSet 单元格解析规则表
// 忽略词、年级词、类别后缀全部是数据而非代码，便于按校情调整
type RuleSet struct {
	// IgnoreWords 整格等值忽略（大小写不敏感），如 "0"、"nan"
	IgnoreWords []string `yaml:"ignore_words"`
	// Weekdays 星期标签：既是忽略词，也是网格表分类依据
	Weekdays []string `yaml:"weekdays"`
	// NonTeaching 非授课活动标签，不计课时
	NonTeaching []string `yaml:"non_teaching"`
	// GradeTokens 年级词，用于“姓名+年级+余文”切分
	GradeTokens []string `yaml:"grade_tokens"`
	// CategorySuffixes 已知课型后缀，用于“姓名+课型”切分
	CategorySuffixes []string `yaml:"category_suffixes"`
	// DefaultCategory 无法切分时的兜底类别
	DefaultCategory string `yaml:"default_category"`

	gradeRe *regexp.Regexp
}

// Default 内置默认规则
func Default() *RuleSet {
	r := &RuleSet{
		IgnoreWords: []string{"0", "0.0", "nan", "none"},
		Weekdays: []string{
			"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日",
		},
		NonTeaching: []string{
			"体育", "体育课", "班会", "文化课", "美术", "音乐", "大扫除",
		},
		GradeTokens: []string{
			"高一", "高二", "高三",
			"初一", "初二", "初三",
			"小一", "小二", "小三", "小四", "小五", "小六",
		},
		CategorySuffixes: []string{
			"早自习", "早自", "大课", "小课", "晚自习", "晚自小", "晚自",
			"辅导", "正课", "早读", "晚修",
		},
		DefaultCategory: "正课",
	}
	r.compile()
	return r
}

// Load 从 YAML 文件加载规则；文件不存在时返回默认规则
func Load(path string) (*RuleSet, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("读取规则文件失败: %w", err)
	}

	r := Default()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("解析规则文件失败: %w", err)
	}
	if r.DefaultCategory == "" {
		r.DefaultCategory = "正课"
	}
	r.compile()
	return r, nil
}

// compile 依据年级词构建切分正则：前导姓名 + 年级词 + 余文
func (r *RuleSet) compile() {
	if len(r.GradeTokens) == 0 {
		r.gradeRe = nil
		return
	}
	quoted := make([]string, len(r.GradeTokens))
	for i, tok := range r.GradeTokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	r.gradeRe = regexp.MustCompile(`^(.+?)(` + strings.Join(quoted, "|") + `)(.*)$`)
}

// IsIgnored 整格是否命中忽略集（忽略词 ∪ 星期 ∪ 非授课活动）
func (r *RuleSet) IsIgnored(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range r.IgnoreWords {
		if lower == strings.ToLower(w) {
			return true
		}
	}
	for _, w := range r.Weekdays {
		if text == w {
			return true
		}
	}
	for _, w := range r.NonTeaching {
		if text == w {
			return true
		}
	}
	return false
}

// IsWeekday 是否为星期标签
func (r *RuleSet) IsWeekday(text string) bool {
	for _, w := range r.Weekdays {
		if text == w {
			return true
		}
	}
	return false
}

// SplitGrade 尝试“姓名+年级+余文”切分
// 命中时返回姓名与类别（年级词与余文原样拼接）
func (r *RuleSet) SplitGrade(text string) (name, category string, ok bool) {
	if r.gradeRe == nil {
		return "", "", false
	}
	m := r.gradeRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2] + m[3], true
}

// MatchSuffix 尝试已知课型后缀切分，长后缀优先
// 仅当去掉后缀仍有姓名前缀时才命中
func (r *RuleSet) MatchSuffix(text string) (name, category string, ok bool) {
	suffixes := make([]string, len(r.CategorySuffixes))
	copy(suffixes, r.CategorySuffixes)
	sort.Slice(suffixes, func(i, j int) bool {
		return len(suffixes[i]) > len(suffixes[j])
	})

	for _, suf := range suffixes {
		if suf == "" || !strings.HasSuffix(text, suf) {
			continue
		}
		prefix := strings.TrimSuffix(text, suf)
		if prefix == "" {
			continue
		}
		return prefix, suf, true
	}
	return "", "", false
}
