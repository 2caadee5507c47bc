package stats

import (
	"testing"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

func rec(teacher, category string, hours float64) model.ParsedRecord {
	return model.ParsedRecord{Teacher: teacher, Category: category, Hours: hours}
}

func TestAggregate_Empty(t *testing.T) {
	p := Aggregate(nil)
	if len(p.Teachers) != 0 || len(p.Categories) != 0 {
		t.Fatalf("got %+v, want empty pivot", p)
	}
	table := p.Table()
	if len(table.Rows) != 0 {
		t.Fatalf("table rows = %d", len(table.Rows))
	}
}

func TestAggregate_SingleRecord(t *testing.T) {
	p := Aggregate([]model.ParsedRecord{rec("张三", "高一早自", 2)})
	if len(p.Teachers) != 1 || len(p.Categories) != 1 {
		t.Fatalf("got %+v", p)
	}
	if p.Totals["张三"] != 2 {
		t.Fatalf("total = %v, want 2", p.Totals["张三"])
	}
}

func TestAggregate_RowTotalInvariant(t *testing.T) {
	records := []model.ParsedRecord{
		rec("张三", "高一早自", 2),
		rec("张三", "高一正课", 1.5),
		rec("李四", "高一正课", 1),
		rec("张三", "高一早自", 1),
		rec("王五", "辅导", 0.5),
	}

	p := Aggregate(records)
	for _, teacher := range p.Teachers {
		sum := 0.0
		for _, cat := range p.Categories {
			sum += p.Get(teacher, cat)
		}
		if sum != p.Totals[teacher] {
			t.Fatalf("%s: total %v != sum %v", teacher, p.Totals[teacher], sum)
		}
	}

	if p.Get("张三", "高一早自") != 3 {
		t.Fatalf("张三/高一早自 = %v", p.Get("张三", "高一早自"))
	}
	// 缺省格为 0 而非缺失
	if p.Get("李四", "高一早自") != 0 {
		t.Fatalf("missing cell = %v, want 0", p.Get("李四", "高一早自"))
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	records := []model.ParsedRecord{
		rec("张三", "晚自", 1),
		rec("李四", "早自", 1),
		rec("张三", "正课", 1),
	}

	p := Aggregate(records)
	wantTeachers := []string{"张三", "李四"}
	for i, name := range wantTeachers {
		if p.Teachers[i] != name {
			t.Fatalf("teachers = %v", p.Teachers)
		}
	}
	wantCats := []string{"晚自", "早自", "正课"}
	for i, cat := range wantCats {
		if p.Categories[i] != cat {
			t.Fatalf("categories = %v", p.Categories)
		}
	}
}

func TestPivotTable_Shape(t *testing.T) {
	p := Aggregate([]model.ParsedRecord{
		rec("张三", "早自", 2),
		rec("李四", "正课", 1),
	})

	table := p.Table()
	// 教师 + 两个类别 + 合计
	if len(table.Columns) != 4 {
		t.Fatalf("columns = %v", table.Columns)
	}
	if table.Columns[len(table.Columns)-1] != model.TotalColumn {
		t.Fatalf("last column = %q", table.Columns[len(table.Columns)-1])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
	// 张三行：早自 2，正课 0，合计 2
	row := table.Rows[0]
	if row[0] != "张三" || row[1] != 2.0 || row[2] != 0.0 || row[3] != 2.0 {
		t.Fatalf("row = %v", row)
	}
}
