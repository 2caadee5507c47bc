package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

func TestTypeCell(t *testing.T) {
	cases := []struct {
		in   string
		want model.CellType
	}{
		{"", model.CellBlank},
		{"   ", model.CellBlank},
		{"2026-01-05", model.CellDate},
		{"2026/1/5", model.CellDate},
		{"2", model.CellNumber},
		{"1,200.5", model.CellNumber},
		{"张三高一早自2", model.CellText},
		{"2026-01-05星期一", model.CellText}, // 带星期后缀的标记保留文本，由解析层处理
	}

	for _, c := range cases {
		if got := TypeCell(c.in); got.Type != c.want {
			t.Errorf("TypeCell(%q).Type = %v, want %v", c.in, got.Type, c.want)
		}
	}
}

func TestLoadWorkbook_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "课表.xlsx")

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "高一1班")
	f.SetCellValue("高一1班", "A1", "2026-01-05")
	f.SetCellValue("高一1班", "A2", "星期一")
	f.SetCellValue("高一1班", "A3", "张三高一早自2")
	f.NewSheet("记录表")
	f.SetCellValue("记录表", "A1", "姓名")
	f.SetCellValue("记录表", "B1", "课时")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	_ = f.Close()

	sheets, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("sheets = %d, want 2", len(sheets))
	}
	if sheets[0].Name != "高一1班" {
		t.Fatalf("first sheet = %q", sheets[0].Name)
	}
	if len(sheets[0].Rows) != 3 {
		t.Fatalf("rows = %d", len(sheets[0].Rows))
	}
	if sheets[0].Rows[2][0].Type != model.CellText {
		t.Fatalf("cell type = %v", sheets[0].Rows[2][0].Type)
	}
}

func TestLoadWorkbook_UnsupportedExt(t *testing.T) {
	if _, err := LoadWorkbook("schedule.csv"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
