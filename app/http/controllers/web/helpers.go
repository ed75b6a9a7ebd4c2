// Package web 后台管理与签到页面的控制器
package web

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// input 先取 query 参数，再取表单参数，GET 与 POST 两种写法效果一致
func input(c *gin.Context, key string) string {
	if v, ok := c.GetQuery(key); ok {
		return v
	}
	return c.PostForm(key)
}

// paramID 解析路由中的数字 ID
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil
}

// safeRedirect 只允许站内跳转，其余情况使用默认地址
func safeRedirect(next, fallback string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.HasPrefix(next, "/\\") {
		return next
	}
	return fallback
}
