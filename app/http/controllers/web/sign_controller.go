package web

import (
	"errors"
	"html/template"

	"guestsign/app/repositories"
	"guestsign/app/requests"
	"guestsign/app/services"
	"guestsign/pkg/auth"
	"guestsign/pkg/logger"
	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignController 发布会签到
type SignController struct {
	checkin *services.CheckinService
}

// NewSignController 创建控制器
func NewSignController(checkin *services.CheckinService) *SignController {
	return &SignController{checkin: checkin}
}

// Index 签到页
func (sc *SignController) Index(c *gin.Context) {
	eventID, ok := paramID(c, "eid")
	if !ok {
		response.Abort400(c, "发布会 ID 格式错误")
		return
	}

	e, err := sc.checkin.Event(c.Request.Context(), eventID)
	if errors.Is(err, repositories.ErrEventNotFound) {
		response.Abort404(c, "发布会不存在")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Page(c, TemplateSignIndex, SignIndexView{
		User:  auth.CurrentUsername(c),
		Event: e,
	})
}

// Action 提交手机号签到，四种结果都以 200 渲染提示
func (sc *SignController) Action(c *gin.Context) {
	eventID, ok := paramID(c, "eid")
	if !ok {
		response.Abort400(c, "发布会 ID 格式错误")
		return
	}

	// 解析失败按空手机号处理
	var request requests.SignRequest
	logger.LogIf(c.ShouldBind(&request))

	result, err := sc.checkin.SignIn(c.Request.Context(), eventID, request.Phone)
	switch {
	case errors.Is(err, repositories.ErrEventNotFound):
		response.Abort404(c, "发布会不存在")
		return
	case errors.Is(err, repositories.ErrDuplicateGuest):
		response.Abort409(c, "该发布会下存在重复的手机号，请联系管理员")
		return
	case err != nil:
		response.ServerError(c, err)
		return
	}

	response.Page(c, TemplateSignIndex, SignIndexView{
		User:  auth.CurrentUsername(c),
		Event: result.Event,
		Hint:  template.HTML(result.Hint()),
		Guest: result.Guest,
	})
}
