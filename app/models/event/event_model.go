// Package event 发布会模型
package event

import (
	"time"

	"guestsign/app/models"
)

// Event 发布会
//
// Limit 只做存储和展示，签到与嘉宾录入都不校验人数上限
type Event struct {
	models.BaseModel

	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Status    bool      `gorm:"not null;default:false;index" json:"status"`
	Limit     int       `gorm:"column:limit;not null;default:0" json:"limit"`
	Address   string    `gorm:"type:varchar(200)" json:"address"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
}

// TableName 表名
func (Event) TableName() string {
	return "events"
}

// StatusLabel 列表页展示用
func (e Event) StatusLabel() string {
	if e.Status {
		return "open"
	}
	return "closed"
}
