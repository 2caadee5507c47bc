package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/licxiahhht2698-ui/keshitongji/internal/stats"
	"github.com/licxiahhht2698-ui/keshitongji/internal/store"
)

// CreateRecordRequest 手工录入一条课时记录
type CreateRecordRequest struct {
	Teacher string  `json:"teacher" binding:"required"`
	Month   string  `json:"month"`
	Course  string  `json:"course"`
	Hours   float64 `json:"hours"`
}

// CreateRecord 新增课时记录
// POST /api/records
func (h *Handler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	teacher := strings.TrimSpace(req.Teacher)
	if teacher == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "教师姓名不能为空"})
		return
	}
	if req.Hours < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "课时数不能为负"})
		return
	}

	id, err := h.store.InsertRecord(store.LessonRecord{
		Teacher: teacher,
		Month:   req.Month,
		Course:  strings.TrimSpace(req.Course),
		Hours:   req.Hours,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存课时记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListRecords 课时记录清单
// GET /api/records?month=2026-01
func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.store.ListRecords(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询课时记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// RecordsSummary 已存记录的课时看板（教师×课程透视）
// GET /api/records/summary?month=2026-01
func (h *Handler) RecordsSummary(c *gin.Context) {
	records, err := h.store.ListRecords(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询课时记录失败"})
		return
	}

	pivot := stats.Aggregate(store.RecordsAsParsed(records))
	c.JSON(http.StatusOK, gin.H{
		"pivot":       pivot.Table(),
		"recordCount": len(records),
	})
}

// ListTeachers 教师名单
// GET /api/teachers
func (h *Handler) ListTeachers(c *gin.Context) {
	teachers, err := h.store.ListTeachers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询教师名单失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teachers": teachers})
}
