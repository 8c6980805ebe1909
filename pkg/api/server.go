package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"CryptoFolio/pkg/config"
)

// Server API服务器
type Server struct {
	router *gin.Engine
	srv    *http.Server
}

// NewServer 创建新的API服务器
func NewServer(cfg *config.Config) *Server {
	router := gin.New()

	// 设置中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestID())

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.API.Host, cfg.API.Port),
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	return &Server{
		router: router,
		srv:    srv,
	}
}

// SetupRoutes 设置路由
func (s *Server) SetupRoutes(handlers *Handlers) {
	api := s.router.Group("/api")
	{
		// 健康检查
		api.GET("/health", handlers.HealthCheck)

		// 持仓接口
		api.GET("/portfolio", handlers.ListPortfolio)
		api.POST("/portfolio", handlers.CreateHolding)
		api.GET("/portfolio/:symbol_or_id", handlers.GetHolding)
		api.PUT("/portfolio/:symbol_or_id", handlers.UpdateHolding)
		api.DELETE("/portfolio/:symbol_or_id", handlers.DeleteHolding)

		// 情绪接口
		api.GET("/sentiment", handlers.ListSentiments)
		api.POST("/sentiment", handlers.CreateSentiment)

		// 交易接口
		api.GET("/transactions", handlers.ListTransactions)
		api.POST("/transactions", handlers.CreateTransaction)
	}
}

// Router 返回底层路由，供测试挂载
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start 启动服务器并等待退出信号
func (s *Server) Start() {
	// 在goroutine中启动服务器
	go func() {
		log.Printf("API服务器启动在 %s\n", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务器失败: %v\n", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 设置超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 优雅关闭
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v\n", err)
	}

	log.Println("服务器已关闭")
}
