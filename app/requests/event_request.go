package requests

import (
	"guestsign/app/models/event"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// EventRequest 新增或编辑发布会，ID 非空时为编辑
type EventRequest struct {
	ID        string `form:"id" json:"id"`
	Name      string `form:"name" json:"name"`
	Status    string `form:"status" json:"status"`
	Limit     string `form:"limit" json:"limit"`
	Address   string `form:"address" json:"address"`
	StartTime string `form:"start_time" json:"start_time"`
}

// EventSave 验证发布会表单
func EventSave(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"id":         []string{"digits_between:1,19"},
		"name":       []string{"required", "max:100"},
		"limit":      []string{"digits_between:1,9"},
		"address":    []string{"max:200"},
		"start_time": []string{"required"},
	}
	messages := govalidator.MapData{
		"id": []string{
			"digits_between:发布会 ID 必须为数字",
		},
		"name": []string{
			"required:发布会名称为必填项",
			"max:发布会名称长度不能超过 100 个字符",
		},
		"limit": []string{
			"digits_between:人数上限必须为非负整数",
		},
		"address": []string{
			"max:地址长度不能超过 200 个字符",
		},
		"start_time": []string{
			"required:开始时间为必填项",
		},
	}

	errs := ValidateStruct(data, rules, messages)

	req := data.(*EventRequest)
	if req.StartTime != "" {
		if _, err := parseTime(req.StartTime); err != nil {
			errs = addError(errs, "start_time", "开始时间格式错误，示例：2019-12-20 09:35:00")
		}
	}
	return errs
}

// ToModel 转换为模型，调用前须已通过 EventSave 验证
func (r *EventRequest) ToModel() *event.Event {
	startTime, _ := parseTime(r.StartTime)
	e := &event.Event{
		Name:      r.Name,
		Status:    parseBool(r.Status),
		Limit:     int(parseUint(r.Limit)),
		Address:   r.Address,
		StartTime: startTime,
	}
	e.ID = parseUint(r.ID)
	return e
}
