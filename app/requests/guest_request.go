package requests

import (
	"guestsign/app/models/guest"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// GuestRequest 新增嘉宾
type GuestRequest struct {
	EventID  string `form:"event_id" json:"event_id"`
	Realname string `form:"realname" json:"realname"`
	Phone    string `form:"phone" json:"phone"`
	Email    string `form:"email" json:"email"`
	Sign     string `form:"sign" json:"sign"`
}

// GuestSave 验证嘉宾表单
func GuestSave(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"event_id": []string{"required", "digits_between:1,19"},
		"realname": []string{"required", "max:64"},
		"phone":    []string{"required", "digits_between:5,16"},
		"email":    []string{"email"},
	}
	messages := govalidator.MapData{
		"event_id": []string{
			"required:发布会为必填项",
			"digits_between:发布会 ID 必须为数字",
		},
		"realname": []string{
			"required:姓名为必填项",
			"max:姓名长度不能超过 64 个字符",
		},
		"phone": []string{
			"required:手机号为必填项",
			"digits_between:手机号必须为 5 到 16 位数字",
		},
		"email": []string{
			"email:Email 格式不正确",
		},
	}
	return ValidateStruct(data, rules, messages)
}

// ToModel 转换为模型，调用前须已通过 GuestSave 验证
func (r *GuestRequest) ToModel() *guest.Guest {
	return &guest.Guest{
		EventID:  parseUint(r.EventID),
		Realname: r.Realname,
		Phone:    r.Phone,
		Email:    r.Email,
		Sign:     parseBool(r.Sign),
	}
}
