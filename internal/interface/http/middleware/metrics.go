package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booktracker/pkg/metrics"
)

// Metrics HTTP指标中间件
// 设计说明:
// 1. path标签用路由模板(/api/books/:id)而不是实际URL,控制标签基数
// 2. 进行中请求数用Gauge,完成后按状态码累加Counter并观测耗时
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			// 未匹配任何路由(404),统一归到一个标签避免基数爆炸
			path = "unmatched"
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, method, path, status)
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, time.Since(start).Seconds(), method, path)
	}
}
