package model

// SheetKind 工作表形态（用于统计入口的自动选择）
type SheetKind string

const (
	// SheetKindGrid 课表网格：列对应日期/星期，单元格为“教师+课程”文本
	SheetKindGrid SheetKind = "grid"
	// SheetKindFlat 平面记录表：每行已是（教师、类别、课时数）结构化记录
	SheetKindFlat SheetKind = "flat"
)

// RawSheet 原始工作表：载入后只读
type RawSheet struct {
	Name string
	Rows [][]CellValue
}

// Schema 规整后的列标识序列（唯一、非空）
type Schema []string

// Index 返回列标识的位置，不存在返回 -1
func (s Schema) Index(id string) int {
	for i, col := range s {
		if col == id {
			return i
		}
	}
	return -1
}

// Contains 是否包含列标识
func (s Schema) Contains(id string) bool {
	return s.Index(id) >= 0
}

// CleanSheet 规整后的工作表：表头已消费，空行空列已剔除
type CleanSheet struct {
	Name      string
	Schema    Schema
	Rows      [][]CellValue
	HeaderRow int // 原始表中的表头行号；-1 表示未检出表头（未消费任何行）
}

// Cell 取第 row 行第 col 列的值，越界返回空白
func (s *CleanSheet) Cell(row, col int) CellValue {
	if row < 0 || row >= len(s.Rows) {
		return BlankCell()
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return BlankCell()
	}
	return r[col]
}

// Empty 是否无有效数据（零列视为结构性空表）
func (s *CleanSheet) Empty() bool {
	return len(s.Schema) == 0
}
