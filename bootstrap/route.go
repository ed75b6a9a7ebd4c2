// Package bootstrap 处理程序初始化逻辑
package bootstrap

import (
	"guestsign/app/http/middlewares"
	"guestsign/pkg/response"
	"guestsign/resources"
	"guestsign/routes"

	"github.com/gin-gonic/gin"
)

// SetupRoute 路由初始化
// 1. 注册全局中间件
// 2. 加载页面模板
// 3. 注册页面路由
// 4. 配置 404 处理器
func SetupRoute(router *gin.Engine, deps routes.Dependencies) {
	// 注册全局中间件
	registerGlobalMiddleWare(router)

	router.SetHTMLTemplate(resources.Templates())

	routes.RegisterWebRoutes(router, deps)

	// 配置 404 路由处理器
	setup404Handler(router)
}

// registerGlobalMiddleWare 注册全局中间件
func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),   // 记录请求日志
		middlewares.Recovery(), // 在发生 panic 时恢复
	)
}

// setup404Handler 根据 Accept 返回 HTML 或 JSON 格式的 404
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		response.Abort404(c, "路由未定义，请确认 url 和请求方法是否正确。")
	})
}
