package bootstrap

import (
	"fmt"

	"guestsign/pkg/config"
	"guestsign/pkg/logger"
	"guestsign/pkg/redis"
)

// SetupRedis 初始化 Redis，只有会话驱动为 redis 时才需要
func SetupRedis() {
	if config.GetString("session.driver") != "redis" {
		return
	}

	err := redis.ConnectRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
	)
	if err != nil {
		logger.ErrorString("Redis", "连接", err.Error())
		panic(err)
	}
	logger.InfoString("Redis", "连接", "Redis 连接成功")
}
