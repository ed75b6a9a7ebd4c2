// Package auth 请求级身份信息
package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Identity 已登录的管理员
type Identity struct {
	UserID   uint64
	Username string
	Token    string
}

type identityKey struct{}

// WithIdentity 将身份写入 context
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext 从 context 读取身份
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}

// SetIdentity 中间件调用，身份随 request context 传给控制器与仓库
func SetIdentity(c *gin.Context, id *Identity) {
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
}

// CurrentIdentity 控制器调用，未登录时返回 nil
func CurrentIdentity(c *gin.Context) *Identity {
	id, _ := FromContext(c.Request.Context())
	return id
}

// CurrentUsername 当前用户名，未登录时为空
func CurrentUsername(c *gin.Context) string {
	if id := CurrentIdentity(c); id != nil {
		return id.Username
	}
	return ""
}
