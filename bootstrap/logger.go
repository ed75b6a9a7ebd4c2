package bootstrap

import (
	"fmt"

	"guestsign/pkg/config"
	"guestsign/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupLogger 初始化 Logger，各配置项的含义见 config/log.go
func SetupLogger() {
	logger.InitLogger(
		config.GetString("log.filename"),
		config.GetInt("log.max_size"),
		config.GetInt("log.max_backup"),
		config.GetInt("log.max_age"),
		config.GetBool("log.compress"),
		config.GetString("log.type"),
		config.GetString("log.level"),
	)

	// debug 模式下 gin 打印的路由表改由 zap 记录
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		logger.DebugString("Route", httpMethod, fmt.Sprintf("%s -> %s (%d handlers)", absolutePath, handlerName, nuHandlers))
	}
}
