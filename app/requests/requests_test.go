package requests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSave(t *testing.T) {
	valid := &EventRequest{
		Name:      "huawei P40 发布会",
		Status:    "on",
		Limit:     "200",
		Address:   "shenzhen",
		StartTime: "2026-08-10 14:00:00",
	}
	assert.Empty(t, EventSave(valid, nil))

	errs := EventSave(&EventRequest{StartTime: "tomorrow"}, nil)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "start_time")

	errs = EventSave(&EventRequest{Name: "x", StartTime: "2026-08-10 14:00", Limit: "abc"}, nil)
	assert.Contains(t, errs, "limit")
	assert.NotContains(t, errs, "start_time")
}

func TestEventRequestToModel(t *testing.T) {
	r := &EventRequest{
		ID:        "08",
		Name:      "meizu",
		Status:    "true",
		Limit:     "300",
		Address:   "zhuhai",
		StartTime: "2026-08-10T14:00",
	}
	e := r.ToModel()
	assert.Equal(t, uint64(8), e.ID)
	assert.True(t, e.Status)
	assert.Equal(t, 300, e.Limit)
	assert.Equal(t, time.Date(2026, 8, 10, 14, 0, 0, 0, time.Local), e.StartTime)

	e = (&EventRequest{Name: "jinli", StartTime: "2026-08-10 14:00:00"}).ToModel()
	assert.Zero(t, e.ID)
	assert.False(t, e.Status)
}

func TestGuestSave(t *testing.T) {
	valid := &GuestRequest{EventID: "1", Realname: "alen", Phone: "15359373849", Email: "alen@mail.com"}
	assert.Empty(t, GuestSave(valid, nil))

	errs := GuestSave(&GuestRequest{EventID: "abc", Phone: "1535x", Email: "nope"}, nil)
	assert.Contains(t, errs, "event_id")
	assert.Contains(t, errs, "realname")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "email")

	g := valid.ToModel()
	assert.Equal(t, uint64(1), g.EventID)
	assert.Equal(t, "15359373849", g.Phone)
	assert.False(t, g.Sign)
}

func TestParseBoolFilter(t *testing.T) {
	assert.Nil(t, ParseBoolFilter(""))
	assert.Nil(t, ParseBoolFilter("maybe"))

	v := ParseBoolFilter("True")
	require.NotNil(t, v)
	assert.True(t, *v)

	v = ParseBoolFilter("0")
	require.NotNil(t, v)
	assert.False(t, *v)
}

func TestParseTime(t *testing.T) {
	_, err := parseTime("2026-08-10T14:00:00+08:00")
	assert.NoError(t, err)

	_, err = parseTime("10/08/2026")
	assert.Error(t, err)
}
