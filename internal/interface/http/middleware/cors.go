package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booktracker/internal/infrastructure/config"
)

// CORS 跨域中间件
// 设计说明:
// 1. 只放行配置的单一前端来源,不做通配
// 2. 预检请求(OPTIONS)直接返回204,不进入业务Handler
// 3. 不携带凭证(无Cookie/认证头),因此不设置Allow-Credentials
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
