package config

import "guestsign/pkg/config"

func init() {
	config.Add("admin", func() map[string]interface{} {
		return map[string]interface{}{
			// 启动时若该用户不存在则创建，用户名为空时跳过
			"username": config.Env("ADMIN_USERNAME", ""),
			"email":    config.Env("ADMIN_EMAIL", ""),
			"password": config.Env("ADMIN_PASSWORD", ""),
		}
	})
}
