package migrations

import (
	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/app/models/user"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&user.User{},
		&event.Event{},
		&guest.Guest{},
	}
}
