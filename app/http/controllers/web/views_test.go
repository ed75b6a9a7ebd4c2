package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuestManageViewPageURL(t *testing.T) {
	v := GuestManageView{Path: "/guest_manage/"}
	assert.Equal(t, "/guest_manage/?page=2", v.PageURL(2))

	v = GuestManageView{Path: "/search_guest_name/", Realname: "王 五", Phone: "138", Sign: "true"}
	assert.Equal(t, "/search_guest_name/?page=1&phone=138&realname=%E7%8E%8B+%E4%BA%94&sign=true", v.PageURL(1))
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/guest_manage/?page=2", safeRedirect("/guest_manage/?page=2", "/event_manage/"))
	assert.Equal(t, "/event_manage/", safeRedirect("", "/event_manage/"))
	assert.Equal(t, "/event_manage/", safeRedirect("//evil.example.com", "/event_manage/"))
	assert.Equal(t, "/event_manage/", safeRedirect("/\\evil.example.com", "/event_manage/"))
	assert.Equal(t, "/event_manage/", safeRedirect("https://evil.example.com", "/event_manage/"))
}
