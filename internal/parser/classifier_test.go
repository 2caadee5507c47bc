package parser

import (
	"testing"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
)

func TestClassify_GridByDateToken(t *testing.T) {
	sheet := Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("2026-01-05", "2026/1/6"),
			textRow("张三高一早自", "李四高一正课"),
		},
	})

	if kind := Classify(sheet, rules.Default()); kind != model.SheetKindGrid {
		t.Fatalf("kind = %q, want grid", kind)
	}
}

func TestClassify_GridByWeekday(t *testing.T) {
	sheet := Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("星期一", "星期二"),
			textRow("张三高一早自", ""),
		},
	})

	if kind := Classify(sheet, rules.Default()); kind != model.SheetKindGrid {
		t.Fatalf("kind = %q, want grid", kind)
	}
}

func TestClassify_Flat(t *testing.T) {
	sheet := Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("姓名", "类别", "课时"),
			textRow("张三", "高一早自", "2"),
		},
	})

	if kind := Classify(sheet, rules.Default()); kind != model.SheetKindFlat {
		t.Fatalf("kind = %q, want flat", kind)
	}
}

// 平面表前几行嵌入日期样文本会被判成网格：已知启发式局限，行为固定
func TestClassify_FlatWithDateLikeTextIsGrid(t *testing.T) {
	sheet := Clean(&model.RawSheet{
		Rows: [][]model.CellValue{
			textRow("姓名", "备注"),
			textRow("张三", "2026-01-05入职"),
		},
	})

	if kind := Classify(sheet, rules.Default()); kind != model.SheetKindGrid {
		t.Fatalf("kind = %q, want grid (documented heuristic)", kind)
	}
}

func TestClassify_EmptySheetIsFlat(t *testing.T) {
	sheet := Clean(&model.RawSheet{})
	if kind := Classify(sheet, rules.Default()); kind != model.SheetKindFlat {
		t.Fatalf("kind = %q, want flat", kind)
	}
}
