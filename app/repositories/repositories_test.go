package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/app/models/user"
	"guestsign/pkg/config"
	"guestsign/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	config.Set("app.bcrypt_cost", 4)
}

func TestEventSearchByName(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.CreateEvent(t, db, "xiaomi5 发布会", true, "beijing")
	dbtest.CreateEvent(t, db, "huawei P40 发布会", true, "shenzhen")
	dbtest.CreateEvent(t, db, "meizu", false, "zhuhai")

	repo := NewEventRepository(db)
	events, err := repo.SearchByName(context.Background(), "huawei")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "huawei P40 发布会", events[0].Name)

	all, err := repo.SearchByName(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "xiaomi5 发布会", all[0].Name)
}

func TestEventSearchEscapesWildcards(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.CreateEvent(t, db, "100% off", true, "")
	dbtest.CreateEvent(t, db, "1000 guests", true, "")

	events, err := NewEventRepository(db).SearchByName(context.Background(), "0%")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "100% off", events[0].Name)
}

func TestEventListStatusFilter(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.CreateEvent(t, db, "open one", true, "")
	dbtest.CreateEvent(t, db, "closed one", false, "")

	closed := false
	events, err := NewEventRepository(db).List(context.Background(), EventFilter{Status: &closed})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "closed one", events[0].Name)
}

func TestEventGetAndUpdate(t *testing.T) {
	db := dbtest.Open(t)
	e := dbtest.CreateEvent(t, db, "meizu", true, "zhuhai")
	repo := NewEventRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrEventNotFound)

	err = repo.Update(ctx, &event.Event{
		Name:      "meizu 20",
		Status:    false,
		Address:   "shenzhen",
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrEventNotFound)

	updated := *e
	updated.Name = "meizu 20"
	updated.Status = false
	require.NoError(t, repo.Update(ctx, &updated))

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "meizu 20", got.Name)
	assert.False(t, got.Status)
	assert.Equal(t, 200, got.Limit)
}

func TestGuestUniquePerEvent(t *testing.T) {
	db := dbtest.Open(t)
	e1 := dbtest.CreateEvent(t, db, "meizu", true, "")
	e2 := dbtest.CreateEvent(t, db, "jinli", true, "")
	repo := NewGuestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &guest.Guest{EventID: e1.ID, Realname: "alen", Phone: "15359373849"}))

	err := repo.Create(ctx, &guest.Guest{EventID: e1.ID, Realname: "alen2", Phone: "15359373849"})
	assert.ErrorIs(t, err, ErrDuplicateGuest)

	// 不同发布会可以使用同一手机号
	require.NoError(t, repo.Create(ctx, &guest.Guest{EventID: e2.ID, Realname: "alen", Phone: "15359373849"}))
}

func TestGuestCreateSetsCreateTime(t *testing.T) {
	db := dbtest.Open(t)
	e := dbtest.CreateEvent(t, db, "meizu", true, "")
	repo := NewGuestRepository(db)

	g := &guest.Guest{EventID: e.ID, Realname: "tom", Phone: "13800000000"}
	require.NoError(t, repo.Create(context.Background(), g))
	assert.False(t, g.CreateTime.IsZero())
	assert.False(t, g.Sign)

	got, err := repo.Get(context.Background(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Event)
	assert.Equal(t, "meizu", got.Event.Name)

	_, err = repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGuestLookups(t *testing.T) {
	db := dbtest.Open(t)
	e1 := dbtest.CreateEvent(t, db, "meizu", true, "")
	e2 := dbtest.CreateEvent(t, db, "jinli", true, "")
	dbtest.CreateGuest(t, db, e1.ID, "alen", "15359373849", false)
	repo := NewGuestRepository(db)
	ctx := context.Background()

	ok, err := repo.ExistsByPhone(ctx, "15359373849")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByPhone(ctx, "10000000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ExistsInEvent(ctx, e2.ID, "15359373849")
	require.NoError(t, err)
	assert.False(t, ok)

	g, err := repo.GetInEvent(ctx, e1.ID, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, "alen", g.Realname)

	_, err = repo.GetInEvent(ctx, e2.ID, "15359373849")
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGuestGetInEventDuplicateRows(t *testing.T) {
	db := dbtest.Open(t)
	e := dbtest.CreateEvent(t, db, "meizu", true, "")
	// 模拟没有唯一索引的旧库
	require.NoError(t, db.Migrator().DropIndex(&guest.Guest{}, "idx_guest_event_phone"))
	dbtest.CreateGuest(t, db, e.ID, "a", "15359373849", false)
	dbtest.CreateGuest(t, db, e.ID, "b", "15359373849", false)

	_, err := NewGuestRepository(db).GetInEvent(context.Background(), e.ID, "15359373849")
	assert.ErrorIs(t, err, ErrDuplicateGuest)
}

func TestGuestMarkSignedOnce(t *testing.T) {
	db := dbtest.Open(t)
	e := dbtest.CreateEvent(t, db, "meizu", true, "")
	g := dbtest.CreateGuest(t, db, e.ID, "alen", "15359373849", false)
	repo := NewGuestRepository(db)

	changed, err := repo.MarkSigned(context.Background(), g.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkSigned(context.Background(), g.ID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestGuestPaginate(t *testing.T) {
	db := dbtest.Open(t)
	e := dbtest.CreateEvent(t, db, "meizu", true, "")
	dbtest.CreateGuest(t, db, e.ID, "alen", "13800000001", false)
	dbtest.CreateGuest(t, db, e.ID, "bob", "13800000002", true)
	dbtest.CreateGuest(t, db, e.ID, "alex", "13800000003", false)
	dbtest.CreateGuest(t, db, e.ID, "carl", "13900000004", true)
	dbtest.CreateGuest(t, db, e.ID, "dave", "13900000005", false)
	repo := NewGuestRepository(db)
	ctx := context.Background()

	page, err := repo.Paginate(ctx, GuestFilter{}, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.NumPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "alen", page.Items[0].Realname)
	require.NotNil(t, page.Items[0].Event)
	assert.Equal(t, "meizu", page.Items[0].Event.Name)

	page, err = repo.Paginate(ctx, GuestFilter{}, "9999")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "dave", page.Items[0].Realname)

	page, err = repo.Paginate(ctx, GuestFilter{Realname: "al"}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	assert.Equal(t, "alex", page.Items[1].Realname)

	page, err = repo.Paginate(ctx, GuestFilter{Phone: "139"}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)

	signed := true
	page, err = repo.Paginate(ctx, GuestFilter{Sign: &signed}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	assert.Equal(t, "bob", page.Items[0].Realname)
}

func TestUserRepository(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "admin")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, repo.Create(ctx, &user.User{Username: "admin", Password: "admin123456", IsActive: true}))

	u, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123456", u.Password)
	assert.True(t, u.ComparePassword("admin123456"))
	assert.False(t, u.ComparePassword("wrong"))

	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.TouchLastLogin(ctx, u.ID, at))
	u, err = repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.True(t, at.Equal(*u.LastLogin))
}

func TestUserPasswordAlwaysHashed(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// 与 bcrypt 哈希等长的明文同样需要哈希
	plain := strings.Repeat("p", 60)
	require.NoError(t, repo.Create(ctx, &user.User{Username: "long", Password: plain}))

	u, err := repo.GetByUsername(ctx, "long")
	require.NoError(t, err)
	assert.NotEqual(t, plain, u.Password)
	assert.True(t, u.ComparePassword(plain))
}

func TestUserPasswordTooLong(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &user.User{Username: "root", Password: strings.Repeat("a", 80)})
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	_, err = repo.GetByUsername(ctx, "root")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
