package excel

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/parser"
)

// LoadWorkbook 读取工作簿为原始表集合，按扩展名分派
// .xlsx/.xlsm 走 excelize，.xls 走 extrame/xls（老格式课表仍常见）
func LoadWorkbook(path string) ([]model.RawSheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	case ".xls":
		return loadXLS(path)
	default:
		return nil, fmt.Errorf("不支持的文件格式: %s", filepath.Ext(path))
	}
}

func loadXLSX(path string) ([]model.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开 Excel 失败: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	out := make([]model.RawSheet, 0, len(sheets))
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			continue // 单表读取失败不拖垮整簿
		}
		raw := model.RawSheet{Name: name, Rows: make([][]model.CellValue, 0, len(rows))}
		for _, row := range rows {
			cells := make([]model.CellValue, len(row))
			for j, v := range row {
				cells[j] = TypeCell(v)
			}
			raw.Rows = append(raw.Rows, cells)
		}
		out = append(out, raw)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("工作簿中没有可读取的工作表")
	}
	return out, nil
}

func loadXLS(path string) ([]model.RawSheet, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("打开 XLS 失败: %w", err)
	}

	out := make([]model.RawSheet, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		raw := model.RawSheet{Name: sheet.Name}
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				raw.Rows = append(raw.Rows, nil)
				continue
			}
			cells := make([]model.CellValue, 0, row.LastCol()+1)
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, TypeCell(row.Col(c)))
			}
			raw.Rows = append(raw.Rows, cells)
		}
		out = append(out, raw)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("工作簿中没有可读取的工作表")
	}
	return out, nil
}

// TypeCell 将字符串单元格归一化为标签联合值
// 日期标记识别为日期，数字识别为数值，其余保留文本
func TypeCell(s string) model.CellValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return model.BlankCell()
	}
	if d, ok := parser.ParseDateToken(trimmed); ok {
		return model.DateCell(d)
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return model.NumberCell(f)
	}
	return model.TextCell(trimmed)
}
