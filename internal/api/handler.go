package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
	"github.com/licxiahhht2698-ui/keshitongji/internal/session"
	"github.com/licxiahhht2698-ui/keshitongji/internal/store"
)

// Handler HTTP API 处理器
// 互斥锁保证同一时刻只有一次解析/统计操作（单会话模型）
type Handler struct {
	mu sync.Mutex

	store      *store.Store
	rules      *rules.RuleSet
	uploadsDir string

	session   *session.Session // 当前工作簿会话；未上传时为 nil
	downloads *exportDownloadStore

	// 最近一次统计结果，供导出
	lastPivot *model.PivotSummary
	lastAudit []model.ParsedRecord
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, r *rules.RuleSet, uploadsDir string) *Handler {
	return &Handler{
		store:      st,
		rules:      r,
		uploadsDir: uploadsDir,
		downloads:  newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 工作簿上传与浏览
	router.POST("/upload", h.Upload)
	router.GET("/sheets", h.ListSheets)
	router.GET("/sheets/:name/preview", h.PreviewSheet)
	router.GET("/sheets/:name/columns", h.SheetColumns)
	router.GET("/sheets/:name/dates", h.SheetDates)

	// 统计运行
	router.POST("/stats", h.RunGridStats)
	router.POST("/stats/flat", h.RunFlatStats)

	// 课时记录（手工录入 + 看板）
	router.GET("/records", h.ListRecords)
	router.POST("/records", h.CreateRecord)
	router.GET("/records/summary", h.RecordsSummary)
	router.GET("/teachers", h.ListTeachers)

	// 导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
