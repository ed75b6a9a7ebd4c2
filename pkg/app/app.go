// Package app 应用运行环境相关的辅助函数
package app

import (
	"time"

	"guestsign/pkg/config"
)

// IsLocal 是否本地开发环境
func IsLocal() bool {
	return config.Get("app.env") == "local"
}

// IsProduction 是否生产环境
func IsProduction() bool {
	return config.Get("app.env") == "production"
}

// IsTesting 是否测试环境，测试环境会放宽限流
func IsTesting() bool {
	return config.Get("app.env") == "testing"
}

// TimenowInTimezone 按 app.timezone 返回当前时间，嘉宾的 create_time 使用它
// 时区配置无效时退回 UTC
func TimenowInTimezone() time.Time {
	loc, err := time.LoadLocation(config.GetString("app.timezone", "UTC"))
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}
