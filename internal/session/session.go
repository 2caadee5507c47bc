package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/parser"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
)

// SheetEntry 会话内一张规整后的工作表及其判定结果
type SheetEntry struct {
	Clean *model.CleanSheet
	Kind  model.SheetKind

	// 网格表的日期列映射与可选日期边界
	Dates   map[string]time.Time
	MinDate time.Time
	MaxDate time.Time
	HasDate bool
}

// Session 当前载入的工作簿：一次上传产生一个会话，重新上传整体替换
// 会话是显式传递的对象，不做包级全局状态
type Session struct {
	mu sync.Mutex

	FileName string
	LoadedAt time.Time

	order  []string
	sheets map[string]*SheetEntry
}

// New 从原始工作表构建会话：逐表规整、分类、建立日期映射
func New(fileName string, raws []model.RawSheet, r *rules.RuleSet) *Session {
	s := &Session{
		FileName: fileName,
		LoadedAt: time.Now(),
		sheets:   make(map[string]*SheetEntry, len(raws)),
	}

	for i := range raws {
		clean := parser.Clean(&raws[i])
		entry := &SheetEntry{
			Clean: clean,
			Kind:  parser.Classify(clean, r),
		}
		if entry.Kind == model.SheetKindGrid && !clean.Empty() {
			all := make([]int, len(clean.Schema))
			for j := range clean.Schema {
				all[j] = j
			}
			entry.Dates = parser.MapDates(clean, all)
			entry.MinDate, entry.MaxDate, entry.HasDate = parser.DateBounds(entry.Dates)
		}
		s.order = append(s.order, clean.Name)
		s.sheets[clean.Name] = entry
	}

	return s
}

// Names 工作表名，保持工作簿内顺序
func (s *Session) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Get 取指定工作表
func (s *Session) Get(name string) (*SheetEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sheets[name]
	if !ok {
		return nil, fmt.Errorf("工作表不存在: %s", name)
	}
	return entry, nil
}

// Count 工作表数量
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sheets)
}
