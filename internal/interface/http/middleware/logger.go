package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/booktracker/pkg/logger"
)

// RequestIDKey 请求ID在gin.Context中的键名
const RequestIDKey = "request_id"

// RequestID 请求ID中间件
// 优先沿用上游传入的X-Request-ID,没有则生成UUID,并回写响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger 访问日志中间件
// 设计说明:
// 1. 记录方法、路径、状态码、耗时、客户端IP和请求ID
// 2. 5xx记Error级别,4xx记Warn,其余记Info
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			logger.L().Error("请求处理失败", fields...)
		case status >= 400:
			logger.L().Warn("请求被拒绝", fields...)
		default:
			logger.L().Info("请求完成", fields...)
		}
	}
}
