// Package routes 注册路由
package routes

import (
	"net/http"

	"guestsign/app/http/controllers/web"
	"guestsign/app/http/middlewares"
	"guestsign/app/repositories"
	"guestsign/app/services"
	"guestsign/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 路由限流配置
const (
	// 全局限流：每小时每 IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 登录限流默认值：每分钟每 IP 60 次
	LoginRateLimit = "60-M"
)

// Dependencies 路由所需的服务
type Dependencies struct {
	DB      *gorm.DB
	Auth    *services.AuthService
	Checkin *services.CheckinService
}

var getAndPost = []string{http.MethodGet, http.MethodPost}

// RegisterWebRoutes 注册页面路由
func RegisterWebRoutes(r *gin.Engine, deps Dependencies) {
	events := repositories.NewEventRepository(deps.DB)
	guests := repositories.NewGuestRepository(deps.DB)

	ac := web.NewAuthController(deps.Auth)
	ec := web.NewEventsController(events)
	gc := web.NewGuestsController(guests, events)
	sc := web.NewSignController(deps.Checkin)
	hc := web.NewHealthController(deps.DB)

	r.GET("/healthz", hc.Check)

	site := r.Group("/",
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
	)

	site.GET("/", ac.Index)
	site.GET("/index/", ac.Index)
	site.POST("/login_action/",
		middlewares.LimitPerRoute(config.GetString("app.login_rate_limit", LoginRateLimit)),
		ac.LoginAction,
	)

	// 以下路由需要登录
	authed := site.Group("/", middlewares.AuthRequired(deps.Auth))
	{
		authed.Match(getAndPost, "/event_manage/", ec.Manage)
		authed.Match(getAndPost, "/search_event_name/", ec.SearchName)
		authed.POST("/event_add/", ec.Store)

		authed.Match(getAndPost, "/guest_manage/", gc.Manage)
		authed.Match(getAndPost, "/search_guest_name/", gc.SearchName)
		authed.POST("/guest_add/", gc.Store)

		authed.GET("/sign_index/:eid/", sc.Index)
		authed.POST("/sign_index_action/:eid/", sc.Action)

		authed.GET("/logout/", ac.Logout)
	}
}
