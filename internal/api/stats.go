package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/parser"
	"github.com/licxiahhht2698-ui/keshitongji/internal/session"
	"github.com/licxiahhht2698-ui/keshitongji/internal/stats"
)

// GridStatsRequest 网格课表统计请求
type GridStatsRequest struct {
	Sheet    string `json:"sheet" binding:"required"`
	StartCol string `json:"startCol" binding:"required"`
	EndCol   string `json:"endCol" binding:"required"`
	DateFrom string `json:"dateFrom"` // 2006-01-02；缺省取该表日期边界
	DateTo   string `json:"dateTo"`
	Save     bool   `json:"save"` // 是否将结果持久化
}

// FlatStatsRequest 平面记录表统计请求
type FlatStatsRequest struct {
	Sheet       string `json:"sheet" binding:"required"`
	NameCol     string `json:"nameCol" binding:"required"`
	CategoryCol string `json:"categoryCol" binding:"required"`
	CountCol    string `json:"countCol" binding:"required"`
	Save        bool   `json:"save"`
}

// StatsResponse 统计响应：透视表 + 审计明细 + 跳过格数
type StatsResponse struct {
	Pivot   *model.Table         `json:"pivot"`
	Audit   []model.ParsedRecord `json:"audit"`
	Skipped int                  `json:"skipped"`
	RunID   string               `json:"runId,omitempty"`
}

// RunGridStats 按列范围与日期范围提取网格课表并汇总
// POST /api/stats
func (h *Handler) RunGridStats(c *gin.Context) {
	var req GridStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	entry, ok := h.currentSheet(c, req.Sheet)
	if !ok {
		return
	}

	cols, err := stats.ColumnRange(entry.Clean.Schema, req.StartCol, req.EndCol)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, err := resolveDateRange(req.DateFrom, req.DateTo, entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := stats.Extract(entry.Clean, cols, from, to, h.rules)
	h.respondStats(c, result, req.Sheet, string(model.SheetKindGrid), req.Save)
}

// RunFlatStats 按三列直取平面记录表并汇总
// POST /api/stats/flat
func (h *Handler) RunFlatStats(c *gin.Context) {
	var req FlatStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	entry, ok := h.currentSheet(c, req.Sheet)
	if !ok {
		return
	}

	result, err := stats.ExtractFlat(entry.Clean, req.NameCol, req.CategoryCol, req.CountCol)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, stats.ErrColumnNotFound) || errors.Is(err, stats.ErrInvalidRange) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.respondStats(c, result, req.Sheet, string(model.SheetKindFlat), req.Save)
}

func (h *Handler) respondStats(c *gin.Context, result *stats.Result, sheetName, kind string, save bool) {
	pivot := stats.Aggregate(result.Records)

	h.mu.Lock()
	h.lastPivot = pivot
	h.lastAudit = result.Records
	h.mu.Unlock()

	resp := StatsResponse{
		Pivot:   pivot.Table(),
		Audit:   result.Records,
		Skipped: result.Skipped,
	}

	if save && h.store != nil {
		runID := uuid.New().String()
		totalHours := 0.0
		for _, t := range pivot.Totals {
			totalHours += t
		}
		if err := h.store.SaveRunRecords(runID, sheetName, kind, result.Records, result.Skipped, len(pivot.Teachers), totalHours); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存统计结果失败"})
			return
		}
		resp.RunID = runID
	}

	c.JSON(http.StatusOK, resp)
}

// resolveDateRange 解析请求日期范围，缺省回落到该表的日期边界
func resolveDateRange(fromStr, toStr string, entry *session.SheetEntry) (from, to time.Time, err error) {
	from, to = entry.MinDate, entry.MaxDate
	if !entry.HasDate {
		// 无日期列的网格表：给一个包含一切的范围也提不出记录，直接保持零值区间
		from, to = time.Time{}, time.Time{}
	}

	if fromStr != "" {
		from, err = parseDateParam(fromStr)
		if err != nil {
			return
		}
	}
	if toStr != "" {
		to, err = parseDateParam(toStr)
		if err != nil {
			return
		}
	}
	if to.Before(from) {
		err = errors.New("日期范围起止颠倒")
	}
	return
}

func parseDateParam(s string) (time.Time, error) {
	d, ok := parser.ParseDateToken(s)
	if !ok {
		return time.Time{}, errors.New("日期格式应为 YYYY-MM-DD: " + s)
	}
	return d, nil
}
