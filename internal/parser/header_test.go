package parser

import (
	"testing"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

func textRow(vals ...string) []model.CellValue {
	row := make([]model.CellValue, len(vals))
	for i, v := range vals {
		if v == "" {
			row[i] = model.BlankCell()
		} else {
			row[i] = model.TextCell(v)
		}
	}
	return row
}

func TestNormalizeHeader_KeywordDetection(t *testing.T) {
	raw := &model.RawSheet{
		Name: "高一1班",
		Rows: [][]model.CellValue{
			textRow("某中学课程安排表", "", ""),
			textRow("姓名", "科目", "课时"),
			textRow("张三", "语文", "12"),
		},
	}

	schema, headerRow := NormalizeHeader(raw)
	if headerRow != 1 {
		t.Fatalf("headerRow = %d, want 1", headerRow)
	}
	want := model.Schema{"姓名", "科目", "课时"}
	if len(schema) != len(want) {
		t.Fatalf("schema = %v, want %v", schema, want)
	}
	for i := range want {
		if schema[i] != want[i] {
			t.Fatalf("schema[%d] = %q, want %q", i, schema[i], want[i])
		}
	}
}

func TestNormalizeHeader_UniqueNonBlank(t *testing.T) {
	raw := &model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("姓名", "姓名", "", "Unnamed: 3", "nan", "姓名"),
		},
	}

	schema, headerRow := NormalizeHeader(raw)
	if headerRow != 0 {
		t.Fatalf("headerRow = %d, want 0", headerRow)
	}

	seen := make(map[string]bool)
	for i, col := range schema {
		if col == "" {
			t.Fatalf("schema[%d] is blank", i)
		}
		if seen[col] {
			t.Fatalf("duplicate identifier %q", col)
		}
		seen[col] = true
	}
	if schema[1] != "姓名_1" || schema[5] != "姓名_2" {
		t.Fatalf("dedup suffixes wrong: %v", schema)
	}
	if schema[2] != "unnamed_3" || schema[3] != "unnamed_4" || schema[4] != "unnamed_5" {
		t.Fatalf("placeholder names wrong: %v", schema)
	}
}

func TestNormalizeHeader_NoKeywordRow(t *testing.T) {
	raw := &model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05", "2026-01-06"),
			textRow("星期一", "星期二"),
		},
	}

	schema, headerRow := NormalizeHeader(raw)
	if headerRow != -1 {
		t.Fatalf("headerRow = %d, want -1 (no row consumed)", headerRow)
	}
	if len(schema) != 2 || schema[0] != "unnamed_1" || schema[1] != "unnamed_2" {
		t.Fatalf("schema = %v", schema)
	}
}

func TestNormalizeHeader_EmptySheet(t *testing.T) {
	schema, headerRow := NormalizeHeader(&model.RawSheet{})
	if len(schema) != 0 || headerRow != -1 {
		t.Fatalf("got (%v, %d), want empty schema", schema, headerRow)
	}
}

func TestClean_DropsBlankRowsAndColumns(t *testing.T) {
	raw := &model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("姓名", "备注", "课时"),
			textRow("张三", "", "2"),
			textRow("", "", ""),
			textRow("李四", "", "1"),
		},
	}

	sheet := Clean(raw)
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sheet.Rows))
	}
	// 备注列全空，应被剔除
	if len(sheet.Schema) != 2 || sheet.Schema[0] != "姓名" || sheet.Schema[1] != "课时" {
		t.Fatalf("schema = %v", sheet.Schema)
	}
	for _, row := range sheet.Rows {
		if len(row) != len(sheet.Schema) {
			t.Fatalf("row width %d != schema width %d", len(row), len(sheet.Schema))
		}
	}
}

func TestClean_EmptySheet(t *testing.T) {
	sheet := Clean(&model.RawSheet{Name: "空表"})
	if !sheet.Empty() {
		t.Fatal("expected empty clean sheet")
	}
	if len(sheet.Rows) != 0 {
		t.Fatalf("rows = %d", len(sheet.Rows))
	}
}
