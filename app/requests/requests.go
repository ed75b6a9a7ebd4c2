// Package requests 处理请求数据和表单验证
package requests

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ValidationError 表单验证错误
type ValidationError struct {
	Errors url.Values
}

// Error 实现 error 接口
func (v ValidationError) Error() string {
	return fmt.Sprintf("验证错误: %v", v.Errors)
}

// ValidatorFunc 验证函数类型
type ValidatorFunc func(interface{}, *gin.Context) map[string][]string

// Validate 控制器里调用示例：
//
//	request := requests.EventRequest{}
//	if ok := requests.Validate(c, &request, requests.EventSave); !ok {
//	    return
//	}
//
// 绑定失败返回 400，验证失败返回 422，调用方直接 return 即可
func Validate(c *gin.Context, obj interface{}, handler ValidatorFunc) bool {
	// 1. 解析请求，支持 form 表单、query 与 JSON
	if err := c.ShouldBind(obj); err != nil {
		response.BadRequest(c, err, "请求解析错误，请确认请求格式是否正确")
		return false
	}

	// 2. 表单验证
	errs := handler(obj, c)

	// 3. 判断验证是否通过
	if len(errs) > 0 {
		response.ValidationError(c, errs)
		return false
	}

	return true
}

// ValidateStruct 通用的结构体验证函数，结构体使用 form 标签对应规则
func ValidateStruct(data interface{}, rules govalidator.MapData, messages govalidator.MapData) map[string][]string {
	opts := govalidator.Options{
		Data:          data,
		Rules:         rules,
		TagIdentifier: "form",
		Messages:      messages,
	}
	return govalidator.New(opts).ValidateStruct()
}

// 表单中可接受的时间格式
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// parseTime 解析表单中的时间
func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", value)
}

// parseBool 解析复选框等布尔字段，"on" 为浏览器复选框的默认值
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// ParseBoolFilter 列表过滤参数，空值表示不过滤
func ParseBoolFilter(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		v := true
		return &v
	case "0", "false", "off", "no":
		v := false
		return &v
	}
	return nil
}

// parseUint 十进制解析，非法值返回 0
func parseUint(value string) uint64 {
	n, _ := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	return n
}

// addError 追加一条字段错误
func addError(errs map[string][]string, field, msg string) map[string][]string {
	if errs == nil {
		errs = make(map[string][]string)
	}
	errs[field] = append(errs[field], msg)
	return errs
}
