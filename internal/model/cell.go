package model

import (
	"strconv"
	"time"
)

// CellType 单元格值类型标签
type CellType int

const (
	CellBlank CellType = iota
	CellText
	CellNumber
	CellDate
)

// CellValue 单元格值（文本/数字/日期/空白的标签联合）
// 在工作簿载入时一次性归一化，后续解析不再反复判断原始类型
type CellValue struct {
	Type   CellType
	Text   string
	Number float64
	Date   time.Time
}

// BlankCell 空白单元格
func BlankCell() CellValue {
	return CellValue{Type: CellBlank}
}

// TextCell 文本单元格
func TextCell(s string) CellValue {
	return CellValue{Type: CellText, Text: s}
}

// NumberCell 数字单元格
func NumberCell(f float64) CellValue {
	return CellValue{Type: CellNumber, Number: f}
}

// DateCell 日期单元格
func DateCell(t time.Time) CellValue {
	return CellValue{Type: CellDate, Date: t}
}

// IsBlank 是否空白
func (c CellValue) IsBlank() bool {
	return c.Type == CellBlank
}

// String 展示用字符串形式
func (c CellValue) String() string {
	switch c.Type {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}

// AsFloat 数值化；非数字返回 0（课时数容错口径）
func (c CellValue) AsFloat() float64 {
	switch c.Type {
	case CellNumber:
		return c.Number
	case CellText:
		f, err := strconv.ParseFloat(c.Text, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
