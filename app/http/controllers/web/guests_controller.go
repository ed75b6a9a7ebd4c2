package web

import (
	"errors"
	"net/http"

	"guestsign/app/repositories"
	"guestsign/app/requests"
	"guestsign/pkg/auth"
	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
)

// GuestsController 嘉宾管理
type GuestsController struct {
	guests *repositories.GuestRepository
	events *repositories.EventRepository
}

// NewGuestsController 创建控制器
func NewGuestsController(guests *repositories.GuestRepository, events *repositories.EventRepository) *GuestsController {
	return &GuestsController{guests: guests, events: events}
}

// Manage 嘉宾列表，每页 2 条，支持 sign 过滤
func (gc *GuestsController) Manage(c *gin.Context) {
	gc.render(c, repositories.GuestFilter{
		Sign: requests.ParseBoolFilter(input(c, "sign")),
	})
}

// SearchName 按姓名（以及手机号）搜索嘉宾，结果同样分页
func (gc *GuestsController) SearchName(c *gin.Context) {
	gc.render(c, repositories.GuestFilter{
		Realname: input(c, "realname"),
		Phone:    input(c, "phone"),
		Sign:     requests.ParseBoolFilter(input(c, "sign")),
	})
}

func (gc *GuestsController) render(c *gin.Context, filter repositories.GuestFilter) {
	page, err := gc.guests.Paginate(c.Request.Context(), filter, input(c, "page"))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Page(c, TemplateGuestManage, GuestManageView{
		User:     auth.CurrentUsername(c),
		Guests:   page,
		Realname: filter.Realname,
		Phone:    filter.Phone,
		Sign:     input(c, "sign"),
		Path:     c.Request.URL.Path,
	})
}

// Store 新增嘉宾，同一发布会下手机号重复时返回 409
func (gc *GuestsController) Store(c *gin.Context) {
	request := requests.GuestRequest{}
	if ok := requests.Validate(c, &request, requests.GuestSave); !ok {
		return
	}

	g := request.ToModel()
	if _, err := gc.events.Get(c.Request.Context(), g.EventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			response.ValidationError(c, map[string][]string{
				"event_id": {"发布会不存在"},
			})
			return
		}
		response.ServerError(c, err)
		return
	}

	err := gc.guests.Create(c.Request.Context(), g)
	if errors.Is(err, repositories.ErrDuplicateGuest) {
		response.Abort409(c, "该发布会下手机号已存在")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/guest_manage/")
}
