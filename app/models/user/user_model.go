// Package user 存放后台管理员 Model 相关逻辑
package user

import (
	"fmt"
	"time"

	"guestsign/app/models"
	"guestsign/pkg/hash"

	"gorm.io/gorm"
)

// User 后台管理员
type User struct {
	models.BaseModel

	Username  string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"type:varchar(254)" json:"email,omitempty"`
	Password  string     `gorm:"type:varchar(128);not null" json:"-"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	models.CommonTimestampsField
}

// TableName 表名
func (User) TableName() string {
	return "users"
}

// BeforeSave GORM 钩子，保存前对明文密码做哈希，哈希失败时中止保存
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" || hash.BcryptIsHashed(u.Password) {
		return nil
	}
	hashed, err := hash.BcryptHash(u.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed
	return nil
}

// ComparePassword 密码是否正确
func (u *User) ComparePassword(plain string) bool {
	return hash.BcryptCheck(plain, u.Password)
}
