package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slimclinic/backend/pkg/redis"
	"slimclinic/backend/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的速率限制中间件（用于登录接口）
// limit: 窗口内允许的最大请求数
// window: 滑动窗口时长
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis 出错时降级放行
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
