//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明:
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同,Wire在编译期生成代码
// 3. 优势:零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/booktracker/internal/application/book"
	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/internal/infrastructure/config"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booktracker/internal/interface/http/handler"
	"github.com/xiebiao/booktracker/internal/interface/http/middleware"
	"github.com/xiebiao/booktracker/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
// 按配置决定是否在MySQL仓储外叠加Redis缓存装饰器
var repositorySet = wire.NewSet(
	provideBookRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	provideEventPublisher,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
)

// provideBookRepository 组装图书仓储
// Redis启用时用缓存装饰器包住MySQL仓储,否则直连
func provideBookRepository(cfg *config.Config, db *gorm.DB) (book.Repository, error) {
	repo := mysql.NewBookRepository(db)
	if !cfg.Redis.Enabled {
		return repo, nil
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewBookCacheRepository(repo, client, cfg.Redis.DetailTTL), nil
}

// provideEventPublisher 组装事件发布器
// MQ未启用时返回空实现
func provideEventPublisher(cfg *config.Config) (appbook.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return appbook.NopPublisher{}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		return nil, err
	}
	return appbook.NewMQPublisher(publisher), nil
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(cfg *config.Config, bookHandler *handler.BookHandler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bookHandler.RegisterRoutes(r)

	return r
}

// InitializeApp 初始化整个应用
// wire.Build告诉Wire需要哪些Provider来构建*gin.Engine,
// Wire会按依赖关系自动排序所有构造函数的调用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回值,实际代码由wire_gen.go生成
	return nil, nil
}
