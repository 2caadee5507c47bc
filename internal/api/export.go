package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	excelsvc "github.com/licxiahhht2698-ui/keshitongji/internal/service/excel"
)

// exportTTL 下载令牌有效期
const exportTTL = 10 * time.Minute

// Export 导出最近一次统计结果为工作簿，返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	h.mu.Lock()
	pivot := h.lastPivot
	audit := h.lastAudit
	h.mu.Unlock()

	if pivot == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "尚未运行统计，无可导出结果"})
		return
	}

	f, err := excelsvc.NewExporter().Export(pivot, audit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败"})
		return
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写出导出文件失败"})
		return
	}

	fileName := fmt.Sprintf("课时汇总_%s.xlsx", time.Now().Format("20060102_150405"))
	token := h.downloads.put(buf.Bytes(), fileName, exportTTL)

	c.JSON(http.StatusOK, gin.H{"token": token, "fileName": fileName})
}

// DownloadExport 按令牌下载导出文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, item.fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", item.data)
}
