package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/booktracker/docs"
	appbook "github.com/xiebiao/booktracker/internal/application/book"
	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/internal/infrastructure/config"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booktracker/internal/interface/http/handler"
	"github.com/xiebiao/booktracker/internal/interface/http/middleware"
	"github.com/xiebiao/booktracker/pkg/logger"
	"github.com/xiebiao/booktracker/pkg/metrics"
	"github.com/xiebiao/booktracker/pkg/mq"
	"github.com/xiebiao/booktracker/pkg/tracing"
)

// @title           BookTracker API
// @version         1.0
// @description     图书目录管理服务,提供图书的登记、查询、修改和删除
// @BasePath        /

// main 主程序入口
// 说明:依赖注入手动组装(cmd/api/wire.go里有等价的Wire配置)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	logger.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
	)

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 初始化链路追踪(可选)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer("booktracker", cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer shutdown(context.Background())
	}

	// 5. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 6. 依赖注入(手动组装)
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层:MySQL仓储,按配置叠加Redis缓存
	var bookRepo book.Repository = mysql.NewBookRepository(db)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		bookRepo = redis.NewBookCacheRepository(bookRepo, redisClient, cfg.Redis.DetailTTL)
	}

	// 事件发布:MQ未启用时退化为空实现
	var events appbook.EventPublisher = appbook.NopPublisher{}
	if cfg.MQ.Enabled {
		publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer publisher.Close()
		events = appbook.NewMQPublisher(publisher)
	}

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService, events)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, events)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, events)

	// 接口层
	bookHandler := handler.NewBookHandler(
		listBooksUseCase,
		getBookUseCase,
		createBookUseCase,
		updateBookUseCase,
		deleteBookUseCase,
	)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	// 8. 注册路由
	registerRoutes(r, bookHandler)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.L().Info("服务启动", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书资源
	bookHandler.RegisterRoutes(r)
}
