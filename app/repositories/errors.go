// Package repositories 数据访问层
//
// 所有方法都接收请求的 context，调用方通过 errors.Is 区分下列哨兵错误
package repositories

import (
	"errors"
	"strings"
)

var (
	// ErrEventNotFound 发布会不存在，控制器返回 404
	ErrEventNotFound = errors.New("event not found")
	// ErrGuestNotFound 嘉宾不存在
	ErrGuestNotFound = errors.New("guest not found")
	// ErrDuplicateGuest 同一发布会下手机号重复，控制器返回 409
	ErrDuplicateGuest = errors.New("duplicate guest phone for event")
	// ErrUserNotFound 管理员不存在
	ErrUserNotFound = errors.New("user not found")
)

// likePattern 构造子串匹配的 LIKE 参数，用 ! 作为转义符以兼容各数据库
func likePattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(s) + "%"
}
