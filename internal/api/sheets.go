package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/session"
)

// previewLimitDefault 预览默认返回的行数
const previewLimitDefault = 20

// currentSheet 取当前会话中的指定工作表；错误已写入响应
func (h *Handler) currentSheet(c *gin.Context, name string) (*session.SheetEntry, bool) {
	h.mu.Lock()
	sess := h.session
	h.mu.Unlock()

	if sess == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "尚未上传工作簿"})
		return nil, false
	}
	entry, err := sess.Get(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return entry, true
}

// ListSheets 工作表清单
// GET /api/sheets
func (h *Handler) ListSheets(c *gin.Context) {
	h.mu.Lock()
	sess := h.session
	h.mu.Unlock()

	if sess == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "尚未上传工作簿"})
		return
	}

	sheets := []SheetSummary{}
	for _, name := range sess.Names() {
		entry, err := sess.Get(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, summarize(entry))
	}
	c.JSON(http.StatusOK, gin.H{"sheets": sheets})
}

// PreviewSheet 预览规整后的前若干行
// GET /api/sheets/:name/preview?limit=20
func (h *Handler) PreviewSheet(c *gin.Context) {
	entry, ok := h.currentSheet(c, c.Param("name"))
	if !ok {
		return
	}

	limit := previewLimitDefault
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	clean := entry.Clean
	end := limit
	if end > len(clean.Rows) {
		end = len(clean.Rows)
	}

	rows := make([][]any, 0, end)
	for i := 0; i < end; i++ {
		row := make([]any, len(clean.Schema))
		for j := range clean.Schema {
			row[j] = clean.Cell(i, j).String()
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, model.Table{Columns: clean.Schema, Rows: rows})
}

// SheetColumns 列标识清单
// GET /api/sheets/:name/columns
func (h *Handler) SheetColumns(c *gin.Context) {
	entry, ok := h.currentSheet(c, c.Param("name"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": entry.Clean.Schema})
}

// SheetDates 网格表的日期列映射与可选边界
// GET /api/sheets/:name/dates
func (h *Handler) SheetDates(c *gin.Context) {
	entry, ok := h.currentSheet(c, c.Param("name"))
	if !ok {
		return
	}

	dates := make(map[string]string, len(entry.Dates))
	for col, d := range entry.Dates {
		dates[col] = d.Format("2006-01-02")
	}

	resp := gin.H{"kind": entry.Kind, "dates": dates}
	if entry.HasDate {
		resp["minDate"] = entry.MinDate.Format("2006-01-02")
		resp["maxDate"] = entry.MaxDate.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}
