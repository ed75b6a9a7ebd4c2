// Package database 数据库操作
package database

import (
	"database/sql"
	"errors"
	"strings"

	"guestsign/pkg/logger"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 对象
var DB *gorm.DB
var SQLDB *sql.DB

// Connect 连接数据库
func Connect(dbConfig gorm.Dialector, _logger gormlogger.Interface) {
	db, err := Open(dbConfig, _logger)
	if err != nil {
		logger.ErrorString("数据库", "连接", err.Error())
		panic(err)
	}
	DB = db

	// 获取底层的 sqlDB
	SQLDB, err = DB.DB()
	if err != nil {
		logger.ErrorString("数据库", "获取底层SQL", err.Error())
		panic(err)
	}
}

// Open 打开一个独立的连接，测试中每个用例使用各自的内存库
func Open(dbConfig gorm.Dialector, _logger gormlogger.Interface) (*gorm.DB, error) {
	return gorm.Open(dbConfig, &gorm.Config{
		Logger:         _logger,
		TranslateError: true,
	})
}

// AutoMigrate 自动迁移所有数据表
func AutoMigrate(db *gorm.DB, tables []interface{}) error {
	return db.AutoMigrate(tables...)
}

// IsUniqueViolation 判断是否违反唯一约束，兼容 sqlite、postgresql 与 mysql
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	// sqlite 驱动只给出文本错误
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
