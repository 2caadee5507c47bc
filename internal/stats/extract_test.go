package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/parser"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestColumnRange(t *testing.T) {
	schema := model.Schema{"a", "b", "c", "d"}

	cols, err := ColumnRange(schema, "b", "d")
	if err != nil {
		t.Fatalf("ColumnRange: %v", err)
	}
	if len(cols) != 3 || cols[0] != 1 || cols[2] != 3 {
		t.Fatalf("cols = %v", cols)
	}

	if _, err := ColumnRange(schema, "x", "d"); !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
	if _, err := ColumnRange(schema, "d", "b"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestExtract_DateRangeFiltering(t *testing.T) {
	// 同一列上下叠两周：第二个日期标记之后的格子属于第二周
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05"),
			textRow("星期一"),
			textRow("张三高一早自2"),
			textRow("2026-01-12"),
			textRow("张三高一早自"),
		},
	})

	r := rules.Default()
	res := Extract(sheet, []int{0}, day(2026, 1, 5), day(2026, 1, 5), r)

	if len(res.Records) != 1 {
		t.Fatalf("records = %d, want 1: %+v", len(res.Records), res.Records)
	}
	rec := res.Records[0]
	if rec.Teacher != "张三" || rec.Hours != 2 || rec.Date != "2026-01-05" {
		t.Fatalf("got %+v", rec)
	}

	// 放宽范围后两周都在
	res = Extract(sheet, []int{0}, day(2026, 1, 5), day(2026, 1, 12), r)
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
}

func TestExtract_NoCurrentDateSkips(t *testing.T) {
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("张三高一早自"), // 日期标记之前，不计
			textRow("2026-01-05"),
			textRow("李四高一正课"),
		},
	})

	res := Extract(sheet, []int{0}, day(2026, 1, 1), day(2026, 1, 31), rules.Default())
	if len(res.Records) != 1 || res.Records[0].Teacher != "李四" {
		t.Fatalf("got %+v", res.Records)
	}
}

func TestExtract_OrderAndProvenance(t *testing.T) {
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05", "2026-01-06"),
			textRow("张三高一早自", "李四高一早自"),
			textRow("王五高一正课", ""),
		},
	})

	res := Extract(sheet, []int{0, 1}, day(2026, 1, 5), day(2026, 1, 6), rules.Default())
	if len(res.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(res.Records))
	}
	// 列外层、行内层
	if res.Records[0].Teacher != "张三" || res.Records[1].Teacher != "王五" || res.Records[2].Teacher != "李四" {
		t.Fatalf("order wrong: %+v", res.Records)
	}
	if res.Records[2].Column != sheet.Schema[1] || res.Records[2].Date != "2026-01-06" {
		t.Fatalf("provenance wrong: %+v", res.Records[2])
	}
}

func TestExtract_SkippedCounting(t *testing.T) {
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05"),
			textRow("星期一"), // 忽略集，计入 skipped
			textRow("张三高一早自"),
			textRow("?"), // 过短，计入 skipped
		},
	})

	res := Extract(sheet, []int{0}, day(2026, 1, 5), day(2026, 1, 5), rules.Default())
	if len(res.Records) != 1 {
		t.Fatalf("records = %d", len(res.Records))
	}
	if res.Skipped != 2 {
		t.Fatalf("skipped = %d, want 2", res.Skipped)
	}
}

func TestExtractFlat(t *testing.T) {
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("姓名", "类别", "课时"),
			textRow("张三", "高一早自", "2"),
			textRow("李四", "高一正课", "x"), // 非数字按 0 计
			textRow("0", "高一正课", "3"),   // 姓名为 0，跳过
			textRow("", "高一正课", "3"),    // 姓名空白的整行若其余有值则保留行，但跳过
		},
	})

	res, err := ExtractFlat(sheet, "姓名", "类别", "课时")
	if err != nil {
		t.Fatalf("ExtractFlat: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d: %+v", len(res.Records), res.Records)
	}
	if res.Records[0].Hours != 2 {
		t.Fatalf("got %+v", res.Records[0])
	}
	if res.Records[1].Teacher != "李四" || res.Records[1].Hours != 0 {
		t.Fatalf("non-numeric count must coerce to 0: %+v", res.Records[1])
	}

	if _, err := ExtractFlat(sheet, "不存在", "类别", "课时"); !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
}

// 端到端：两列网格，覆盖两天的日期范围
func TestExtractAggregate_EndToEnd(t *testing.T) {
	sheet := parser.Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05", "2026-01-06"),
			textRow("星期一", "星期二"),
			textRow("张三高一早自2", "张三高一早自"),
			textRow("李四高一正课", ""),
		},
	})

	cols, err := ColumnRange(sheet.Schema, sheet.Schema[0], sheet.Schema[1])
	if err != nil {
		t.Fatalf("ColumnRange: %v", err)
	}
	res := Extract(sheet, cols, day(2026, 1, 5), day(2026, 1, 6), rules.Default())
	pivot := Aggregate(res.Records)

	if len(pivot.Teachers) != 2 {
		t.Fatalf("teachers = %v", pivot.Teachers)
	}
	if got := pivot.Get("张三", "高一早自"); got != 3 {
		t.Fatalf("张三/高一早自 = %v, want 3", got)
	}
	if got := pivot.Get("李四", "高一正课"); got != 1 {
		t.Fatalf("李四/高一正课 = %v, want 1", got)
	}
	if pivot.Totals["张三"] != 3 || pivot.Totals["李四"] != 1 {
		t.Fatalf("totals = %v", pivot.Totals)
	}
}
