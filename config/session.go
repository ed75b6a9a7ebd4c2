package config

import "guestsign/pkg/config"

func init() {
	config.Add("session", func() map[string]interface{} {
		return map[string]interface{}{
			// 会话存储驱动，可选 memory, redis
			"driver": config.Env("SESSION_DRIVER", "memory"),

			// cookie 名称
			"cookie": config.Env("SESSION_COOKIE", "sessionid"),

			// 会话有效期，单位：分钟
			"lifetime": config.Env("SESSION_LIFETIME", 120),

			// 仅通过 HTTPS 发送 cookie
			"secure": config.Env("SESSION_SECURE", false),

			// redis 驱动下的键前缀
			"prefix": config.Env("SESSION_PREFIX", "guestsign:session:"),
		}
	})
}
