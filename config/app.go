// Package config 站点配置信息
package config

import "guestsign/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "GuestSign"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "8000"),

			// 设置时区，嘉宾创建时间与日志记录会使用到
			"timezone": config.Env("TIMEZONE", "Asia/Shanghai"),

			// bcrypt 计算成本，测试环境可以调低
			"bcrypt_cost": config.Env("BCRYPT_COST", 10),

			// 登录接口限流，格式同 ulule/limiter，例如 60-M
			"login_rate_limit": config.Env("LOGIN_RATE_LIMIT", "60-M"),
		}
	})
}

// Initialize 触发 config 目录下各文件的 init 注册
func Initialize() {}
