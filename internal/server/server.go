package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/licxiahhht2698-ui/keshitongji/internal/api"
	"github.com/licxiahhht2698-ui/keshitongji/internal/config"
	"github.com/licxiahhht2698-ui/keshitongji/internal/rules"
	"github.com/licxiahhht2698-ui/keshitongji/internal/store"
)

// Server HTTP 服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "keshitongji.db"))
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	ruleSet, err := rules.Load(config.RulesPath(cfg))
	if err != nil {
		log.Printf("加载解析规则失败，使用内置规则: %v", err)
		ruleSet = rules.Default()
	}

	apiHandler := api.NewHandler(sqliteStore, ruleSet, filepath.Join(dataDir, "uploads"))

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    apiHandler,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放资源
func (s *Server) Close() error {
	return s.store.Close()
}
