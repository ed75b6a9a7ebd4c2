// Package dbtest 为测试提供独立的 sqlite 内存数据库
package dbtest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/pkg/database"
	"guestsign/pkg/database/migrations"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open 每次调用得到一个全新的、已迁移的内存库，测试结束时关闭
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString())

	db, err := database.Open(sqlite.Open(dsn), gormlogger.Discard)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// 内存库随最后一个连接关闭而销毁，固定单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db, migrations.RegisterTables()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateEvent 写入一条发布会
func CreateEvent(t testing.TB, db *gorm.DB, name string, status bool, address string) *event.Event {
	t.Helper()

	e := &event.Event{
		Name:      name,
		Status:    status,
		Limit:     200,
		Address:   address,
		StartTime: time.Date(2026, 8, 10, 14, 0, 0, 0, time.UTC),
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return e
}

// CreateGuest 写入一条嘉宾
func CreateGuest(t testing.TB, db *gorm.DB, eventID uint64, realname, phone string, sign bool) *guest.Guest {
	t.Helper()

	g := &guest.Guest{
		EventID:  eventID,
		Realname: realname,
		Phone:    phone,
		Email:    realname + "@mail.com",
		Sign:     sign,
	}
	if err := db.Omit("Event").Create(g).Error; err != nil {
		t.Fatalf("create guest: %v", err)
	}
	return g
}
