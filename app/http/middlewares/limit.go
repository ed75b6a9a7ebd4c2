package middlewares

import (
	"sync"
	"time"

	"guestsign/pkg/app"
	"guestsign/pkg/limiter"
	"guestsign/pkg/logger"
	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst 默认突发请求数量
	DefaultBurst = 20
)

var (
	// 用于存储限流器的并发安全缓存
	limiters sync.Map
	// 限流器最近一次被使用的时间
	lastAccess sync.Map
	// 清理协程只启动一次
	cleanupOnce sync.Once
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Limit string
	Burst int
}

// LimitIP 全局限流中间件，针对 IP 进行限流
//
// 支持的限流格式:
//   - 5 reqs/second:   "5-S"
//   - 10 reqs/minute:  "10-M"
//   - 1000 reqs/hour:  "1000-H"
//   - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	return createLimiterHandler(limiter.GetKeyIP, newRateLimitConfig(limit))
}

// LimitPerRoute 针对单个路由的限流中间件，基于 IP + 路由路径进行限流
func LimitPerRoute(limit string) gin.HandlerFunc {
	return createLimiterHandler(limiter.GetKeyRouteWithIP, newRateLimitConfig(limit))
}

func newRateLimitConfig(limit string) RateLimitConfig {
	// 测试环境使用较大限制
	if app.IsTesting() {
		return RateLimitConfig{Limit: "1000000-S", Burst: 1000000}
	}
	return RateLimitConfig{
		Limit: limit,
		Burst: DefaultBurst,
	}
}

// createLimiterHandler 创建限流处理器
func createLimiterHandler(keyFunc func(*gin.Context) string, config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(func() {
		go cleanupLimiters()
	})

	return func(c *gin.Context) {
		key := keyFunc(c)

		lim, err := getLimiter(key, config)
		if err != nil {
			logger.ErrorString("限流器", "创建失败", err.Error())
			// 降级处理：允许请求通过
			c.Next()
			return
		}
		lastAccess.Store(key, time.Now())

		if !lim.Allow() {
			response.Abort429(c)
			return
		}

		setRateLimitHeaders(c, lim)
		c.Next()
	}
}

// getLimiter 获取或创建限流器
func getLimiter(key string, config RateLimitConfig) (*rate.Limiter, error) {
	if lim, exists := limiters.Load(key); exists {
		return lim.(*rate.Limiter), nil
	}

	r, err := limiter.ParseLimit(config.Limit)
	if err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Limit(r.Rate), config.Burst)
	actual, _ := limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter), nil
}

// setRateLimitHeaders 设置限流相关的响应头
func setRateLimitHeaders(c *gin.Context, lim *rate.Limiter) {
	c.Header("X-RateLimit-Limit", cast.ToString(float64(lim.Limit())))
	c.Header("X-RateLimit-Remaining", cast.ToString(int(lim.Tokens())))
}

// cleanupLimiters 每小时清理 24 小时未使用的限流器
func cleanupLimiters() {
	ticker := time.NewTicker(time.Hour)
	for range ticker.C {
		now := time.Now()
		lastAccess.Range(func(key, value interface{}) bool {
			if now.Sub(value.(time.Time)) > 24*time.Hour {
				limiters.Delete(key)
				lastAccess.Delete(key)
			}
			return true
		})
	}
}
