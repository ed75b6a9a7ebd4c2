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

// EventsController 发布会管理
type EventsController struct {
	events *repositories.EventRepository
}

// NewEventsController 创建控制器
func NewEventsController(events *repositories.EventRepository) *EventsController {
	return &EventsController{events: events}
}

// Manage 发布会列表，支持 status 过滤
func (ec *EventsController) Manage(c *gin.Context) {
	ec.render(c, repositories.EventFilter{
		Status: requests.ParseBoolFilter(input(c, "status")),
	})
}

// SearchName 按名称搜索发布会
func (ec *EventsController) SearchName(c *gin.Context) {
	ec.render(c, repositories.EventFilter{
		Name:   input(c, "name"),
		Status: requests.ParseBoolFilter(input(c, "status")),
	})
}

func (ec *EventsController) render(c *gin.Context, filter repositories.EventFilter) {
	events, err := ec.events.List(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Page(c, TemplateEventManage, EventManageView{
		User:   auth.CurrentUsername(c),
		Events: events,
		Search: filter.Name,
	})
}

// Store 新增或编辑发布会
func (ec *EventsController) Store(c *gin.Context) {
	request := requests.EventRequest{}
	if ok := requests.Validate(c, &request, requests.EventSave); !ok {
		return
	}

	e := request.ToModel()
	var err error
	if e.ID > 0 {
		err = ec.events.Update(c.Request.Context(), e)
	} else {
		err = ec.events.Create(c.Request.Context(), e)
	}

	if errors.Is(err, repositories.ErrEventNotFound) {
		response.Abort404(c, "发布会不存在")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/event_manage/")
}
