package model

// ParsedRecord 解析出的单条课时记录
// 不变式：Hours > 0，Teacher 去空格后非空
type ParsedRecord struct {
	Teacher  string  `json:"teacher"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`

	// 来源信息（网格提取时填写，仅用于审计展示）
	Date   string `json:"date,omitempty"`   // 2006-01-02
	Column string `json:"column,omitempty"` // 来源列标识
}

// PivotSummary 课时透视汇总：行=教师，列=类别，值=课时合计
type PivotSummary struct {
	Teachers   []string                      `json:"teachers"`   // 首见顺序
	Categories []string                      `json:"categories"` // 首见顺序，不含合计列
	Cells      map[string]map[string]float64 `json:"cells"`      // teacher -> category -> hours
	Totals     map[string]float64            `json:"totals"`     // teacher -> 行合计
}

// TotalColumn 合成合计列的列名
const TotalColumn = "合计"

// Get 取某教师某类别的课时数，缺省为 0
func (p *PivotSummary) Get(teacher, category string) float64 {
	row, ok := p.Cells[teacher]
	if !ok {
		return 0
	}
	return row[category]
}

// Table 以平面表格形式返回透视结果（含合计列），供展示与导出
func (p *PivotSummary) Table() *Table {
	columns := make([]string, 0, len(p.Categories)+2)
	columns = append(columns, "教师")
	columns = append(columns, p.Categories...)
	columns = append(columns, TotalColumn)

	rows := make([][]any, 0, len(p.Teachers))
	for _, teacher := range p.Teachers {
		row := make([]any, 0, len(columns))
		row = append(row, teacher)
		for _, cat := range p.Categories {
			row = append(row, p.Get(teacher, cat))
		}
		row = append(row, p.Totals[teacher])
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}

// Table 通用表格：有序行 + 命名列，单元格为原生值
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}
