package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	excelsvc "github.com/licxiahhht2698-ui/keshitongji/internal/service/excel"
	"github.com/licxiahhht2698-ui/keshitongji/internal/session"
)

// SheetSummary 上传后每张工作表的概要
type SheetSummary struct {
	Name     string          `json:"name"`
	Kind     model.SheetKind `json:"kind"`
	RowCount int             `json:"rowCount"`
	Columns  []string        `json:"columns"`
	Empty    bool            `json:"empty"`

	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`
}

// UploadResponse 上传响应
type UploadResponse struct {
	FileName string         `json:"fileName"`
	Sheets   []SheetSummary `json:"sheets"`
}

// Upload 上传工作簿并整体替换当前会话
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	dir := h.uploadsDir
	if dir == "" {
		dir = os.TempDir()
	}
	tempPath := filepath.Join(dir, fmt.Sprintf("keshi_upload_%d_%s", time.Now().Unix(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}
	defer func() { _ = os.Remove(tempPath) }()

	raws, err := excelsvc.LoadWorkbook(tempPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.session = session.New(file.Filename, raws, h.rules)
	h.lastPivot = nil
	h.lastAudit = nil
	sess := h.session
	h.mu.Unlock()

	resp := UploadResponse{FileName: file.Filename}
	for _, name := range sess.Names() {
		entry, err := sess.Get(name)
		if err != nil {
			continue
		}
		resp.Sheets = append(resp.Sheets, summarize(entry))
	}

	c.JSON(http.StatusOK, resp)
}

func summarize(entry *session.SheetEntry) SheetSummary {
	s := SheetSummary{
		Name:     entry.Clean.Name,
		Kind:     entry.Kind,
		RowCount: len(entry.Clean.Rows),
		Columns:  entry.Clean.Schema,
		Empty:    entry.Clean.Empty(),
	}
	if entry.HasDate {
		s.MinDate = entry.MinDate.Format("2006-01-02")
		s.MaxDate = entry.MaxDate.Format("2006-01-02")
	}
	return s
}
