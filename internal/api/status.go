package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	WorkbookLoaded bool   `json:"workbookLoaded"` // 是否已载入工作簿
	FileName       string `json:"fileName,omitempty"`
	SheetCount     int    `json:"sheetCount"`
	RecordCount    int    `json:"recordCount"` // 已持久化的课时记录数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	h.mu.Lock()
	sess := h.session
	h.mu.Unlock()

	resp := StatusResponse{}
	if sess != nil {
		resp.WorkbookLoaded = true
		resp.FileName = sess.FileName
		resp.SheetCount = sess.Count()
	}

	if n, err := h.store.CountRecords(); err == nil {
		resp.RecordCount = n
	}

	c.JSON(http.StatusOK, resp)
}
