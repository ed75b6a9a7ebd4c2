package middlewares

import (
	"errors"
	"net/http"
	"net/url"

	"guestsign/app/services"
	"guestsign/pkg/auth"
	"guestsign/pkg/config"
	"guestsign/pkg/response"
	"guestsign/pkg/session"

	"github.com/gin-gonic/gin"
)

// LoginURL 未登录时跳转的地址
const LoginURL = "/index/"

// SessionCookieName 会话 cookie 名称
func SessionCookieName() string {
	return config.GetString("session.cookie", "sessionid")
}

// AuthRequired 要求已登录，未登录时在进入控制器之前跳转到登录页
func AuthRequired(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName())

		identity, err := authService.Authenticate(c.Request.Context(), token)
		if errors.Is(err, session.ErrSessionNotFound) {
			c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		if err != nil {
			response.ServerError(c, err, "会话服务不可用")
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}
