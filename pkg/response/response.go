// Package response 提供统一的 HTTP 响应处理
//
// 页面请求渲染 HTML 模板，Accept 为 JSON 的请求返回 JSON
package response

import (
	"net/http"
	"strings"

	"guestsign/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 预定义响应状态
const (
	Success = "success" // 成功状态
	Error   = "error"   // 错误状态
)

// ErrorTemplate 错误页模板名
const ErrorTemplate = "error.html"

// Response 统一响应结构体
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorPage 错误页视图
type ErrorPage struct {
	Code    int
	Message string
}

// ------------------ 🎯 成功响应系列 ------------------

// JSON 直接返回 JSON 数据
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Page 以 200 渲染页面
func Page(c *gin.Context, name string, view interface{}) {
	c.HTML(http.StatusOK, name, view)
}

// ------------------ 错误响应系列 ------------------

// Abort400 响应 400 错误
func Abort400(c *gin.Context, msg ...string) {
	abort(c, http.StatusBadRequest, getMsg("请求参数错误", msg...), "")
}

// Abort404 响应 404 错误
func Abort404(c *gin.Context, msg ...string) {
	abort(c, http.StatusNotFound, getMsg("资源不存在", msg...), "")
}

// Abort409 响应 409 错误，用于唯一约束冲突
func Abort409(c *gin.Context, msg ...string) {
	abort(c, http.StatusConflict, getMsg("数据冲突", msg...), "")
}

// Abort429 响应 429 错误
func Abort429(c *gin.Context, msg ...string) {
	abort(c, http.StatusTooManyRequests, getMsg("请求太频繁，请稍后再试", msg...), "")
}

// Abort500 响应 500 错误
func Abort500(c *gin.Context, msg ...string) {
	abort(c, http.StatusInternalServerError, getMsg("服务器内部错误", msg...), "")
}

// BadRequest 响应 400 错误（带错误信息）
func BadRequest(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	abort(c, http.StatusBadRequest, getMsg("请求格式错误", msg...), err.Error())
}

// ServerError 响应 500 错误（带错误信息），错误详情只写日志
func ServerError(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	abort(c, http.StatusInternalServerError, getMsg("服务器内部错误", msg...), "")
}

// ValidationError 响应 422 表单验证错误
func ValidationError(c *gin.Context, errors map[string][]string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{
			Status:  Error,
			Message: "表单验证失败",
			Data:    errors,
		})
		return
	}

	var b strings.Builder
	b.WriteString("表单验证失败")
	for field, msgs := range errors {
		b.WriteString("; " + field + ": " + strings.Join(msgs, ", "))
	}
	c.HTML(http.StatusUnprocessableEntity, ErrorTemplate, ErrorPage{
		Code:    http.StatusUnprocessableEntity,
		Message: b.String(),
	})
	c.Abort()
}

// WantsJSON 请求是否期望 JSON 响应
func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func abort(c *gin.Context, code int, message, detail string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(code, Response{
			Status:  Error,
			Message: message,
			Error:   detail,
		})
		return
	}
	c.HTML(code, ErrorTemplate, ErrorPage{Code: code, Message: message})
	c.Abort()
}

// getMsg 获取消息内容
func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return defaultMsg
}
