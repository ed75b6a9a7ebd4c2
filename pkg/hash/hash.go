// Package hash 哈希操作类
package hash

import (
	"guestsign/pkg/config"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHash 使用 bcrypt 对密码进行加密，密码超过 72 字节时返回 bcrypt.ErrPasswordTooLong
func BcryptHash(password string) (string, error) {
	// cost 值越大耗费时间越长，生产环境建议大于 12
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), config.GetInt("app.bcrypt_cost", bcrypt.DefaultCost))
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// BcryptCheck 对比明文密码和数据库的哈希值
func BcryptCheck(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BcryptIsHashed 判断字符串是否是 bcrypt 哈希，长度为 60 的明文不会被误判
func BcryptIsHashed(str string) bool {
	_, err := bcrypt.Cost([]byte(str))
	return err == nil
}
