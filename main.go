package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestsign/bootstrap"
	btsConfig "guestsign/config"
	"guestsign/pkg/config"
	"guestsign/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 加载应用程序的基础配置
func init() {
	// 加载 config 目录下的配置信息
	btsConfig.Initialize()
}

// App 应用程序上下文，用于优雅关闭
type App struct {
	server  *http.Server
	cleanup func()
}

func main() {
	// 解析命令行参数
	env := parseFlags()

	// 初始化配置、日志、数据库与 Redis
	setupApplication(env)

	// 组装服务
	deps, cleanup := bootstrap.SetupServices()

	// 创建并配置 Gin 服务器
	router := setupServer()
	bootstrap.SetupRoute(router, deps)

	app := &App{
		server: &http.Server{
			Addr:              ":" + config.Get("app.port"),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cleanup: cleanup,
	}

	// 启动服务器（包含优雅关闭）
	app.start()
}

// parseFlags 解析命令行参数
func parseFlags() string {
	var env string
	flag.StringVar(&env, "env", "", "加载 .env 文件，例如 --env=testing 将加载 .env.testing 文件")
	flag.Parse()
	return env
}

// setupApplication 初始化应用程序所需的各种组件
func setupApplication(env string) {
	// 先初始化配置
	config.InitConfig(env)

	// 然后初始化日志
	bootstrap.SetupLogger()

	// 初始化数据库
	bootstrap.SetupDB()

	// 会话驱动为 redis 时初始化 Redis
	bootstrap.SetupRedis()
}

// setupServer 创建 Gin 引擎
func setupServer() *gin.Engine {
	if !config.GetBool("app.debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.New()
}

// start 启动服务器并处理优雅关闭
func (a *App) start() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.InfoString("Server", "启动", "监听地址 "+a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalString("Server", "启动", "服务器启动失败: "+err.Error())
		}
	}()

	// 等待中断信号
	<-quit
	logger.InfoString("Server", "关闭", "正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.ErrorString("Server", "关闭", err.Error())
	}
	a.cleanup()

	logger.InfoString("Server", "关闭", "服务器已成功关闭")
}
