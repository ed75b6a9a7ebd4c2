// Package guest 嘉宾模型
package guest

import (
	"time"

	"guestsign/app/models"
	"guestsign/app/models/event"
	"guestsign/pkg/app"

	"gorm.io/gorm"
)

// Guest 嘉宾，(event_id, phone) 唯一
type Guest struct {
	models.BaseModel

	EventID  uint64       `gorm:"not null;uniqueIndex:idx_guest_event_phone,priority:1" json:"event_id"`
	Event    *event.Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Realname string       `gorm:"type:varchar(64);index" json:"realname"`
	Phone    string       `gorm:"type:varchar(16);not null;index:idx_guest_phone;uniqueIndex:idx_guest_event_phone,priority:2" json:"phone"`
	Email    string       `gorm:"type:varchar(254)" json:"email"`
	Sign     bool         `gorm:"not null;default:false;index" json:"sign"`

	CreateTime time.Time `gorm:"column:create_time" json:"create_time"`
}

// TableName 表名
func (Guest) TableName() string {
	return "guests"
}

// BeforeCreate GORM 钩子，写入创建时间
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.CreateTime.IsZero() {
		g.CreateTime = app.TimenowInTimezone()
	}
	return nil
}

// IsSigned 是否已签到
func (g *Guest) IsSigned() bool {
	return g.Sign
}
