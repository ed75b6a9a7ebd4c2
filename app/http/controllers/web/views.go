package web

import (
	"html/template"
	"net/url"
	"strconv"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/pkg/paginator"
)

// 页面模板名
const (
	TemplateIndex       = "index.html"
	TemplateEventManage = "event_manage.html"
	TemplateGuestManage = "guest_manage.html"
	TemplateSignIndex   = "sign_index.html"
)

// IndexView 登录页
type IndexView struct {
	Error string
	Next  string
}

// EventManageView 发布会列表
type EventManageView struct {
	User   string
	Events []event.Event
	Search string
}

// GuestManageView 嘉宾列表
type GuestManageView struct {
	User     string
	Guests   *paginator.Page[guest.Guest]
	Realname string
	Phone    string
	Sign     string
	Path     string
}

// PageURL 翻页链接，保留当前的搜索条件
func (v GuestManageView) PageURL(number int) string {
	q := url.Values{}
	if v.Realname != "" {
		q.Set("realname", v.Realname)
	}
	if v.Phone != "" {
		q.Set("phone", v.Phone)
	}
	if v.Sign != "" {
		q.Set("sign", v.Sign)
	}
	q.Set("page", strconv.Itoa(number))
	return v.Path + "?" + q.Encode()
}

// SignIndexView 签到页。Hint 只来自固定的提示语常量
type SignIndexView struct {
	User  string
	Event *event.Event
	Hint  template.HTML
	Guest *guest.Guest
}
