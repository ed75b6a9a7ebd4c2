package web

import (
	"errors"
	"net/http"

	"guestsign/app/http/middlewares"
	"guestsign/app/requests"
	"guestsign/app/services"
	"guestsign/pkg/auth"
	"guestsign/pkg/config"
	"guestsign/pkg/logger"
	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
)

// LoginErrorMessage 登录失败提示
const LoginErrorMessage = "username or password error!"

// AuthController 登录与注销
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController 创建控制器
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{auth: authService}
}

// Index 登录页
func (ac *AuthController) Index(c *gin.Context) {
	response.Page(c, TemplateIndex, IndexView{Next: c.Query("next")})
}

// LoginAction 登录。失败时以 200 重新渲染登录页并给出提示，成功时 301 跳转
func (ac *AuthController) LoginAction(c *gin.Context) {
	var request requests.LoginRequest
	// 解析失败按空用户名处理，只记录日志
	logger.LogIf(c.ShouldBind(&request))

	sess, err := ac.auth.Login(c.Request.Context(), request.Username, request.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Page(c, TemplateIndex, IndexView{Error: LoginErrorMessage, Next: request.Next})
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	logger.InfoString("Auth", "login", sess.Username)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName(), sess.Token, int(ac.auth.Sessions().TTL().Seconds()),
		"/", "", config.GetBool("session.secure", false), true)
	c.Redirect(http.StatusMovedPermanently, safeRedirect(request.Next, "/event_manage/"))
}

// Logout 注销并跳转到登录页
func (ac *AuthController) Logout(c *gin.Context) {
	if identity := auth.CurrentIdentity(c); identity != nil {
		if err := ac.auth.Logout(c.Request.Context(), identity.Token); err != nil {
			response.ServerError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName(), "", -1, "/", "", config.GetBool("session.secure", false), true)
	c.Redirect(http.StatusMovedPermanently, middlewares.LoginURL)
}
