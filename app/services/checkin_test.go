package services

import (
	"context"
	"errors"
	"testing"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/app/repositories"
	"guestsign/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	signed []uint64
	err    error
}

func (n *recordingNotifier) GuestSigned(_ context.Context, _ *event.Event, g *guest.Guest) error {
	n.signed = append(n.signed, g.ID)
	return n.err
}

// 发布会 meizu(1) 与 jinli(2)，嘉宾 1 未签到，嘉宾 2 已签到
func seedCheckin(t *testing.T) (*gorm.DB, *CheckinService, *recordingNotifier) {
	t.Helper()
	db := dbtest.Open(t)
	e1 := dbtest.CreateEvent(t, db, "meizu", true, "zhuhai")
	e2 := dbtest.CreateEvent(t, db, "jinli", true, "shenzhen")
	require.Equal(t, uint64(1), e1.ID)
	require.Equal(t, uint64(2), e2.ID)
	dbtest.CreateGuest(t, db, e1.ID, "alen", "15359373849", false)
	dbtest.CreateGuest(t, db, e2.ID, "una", "15359373840", true)

	notifier := &recordingNotifier{}
	svc := NewCheckinService(repositories.NewEventRepository(db), repositories.NewGuestRepository(db), notifier)
	return db, svc, notifier
}

func TestSignInAlreadySigned(t *testing.T) {
	_, svc, notifier := seedCheckin(t)

	result, err := svc.SignIn(context.Background(), 2, "15359373840")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadySigned, result.Outcome)
	assert.Equal(t, "You've signed in", result.Hint())
	assert.Nil(t, result.Guest)
	assert.Empty(t, notifier.signed)
}

func TestSignInSuccess(t *testing.T) {
	db, svc, notifier := seedCheckin(t)

	result, err := svc.SignIn(context.Background(), 1, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSigned, result.Outcome)
	assert.Equal(t, "Sign in successfully", result.Hint())
	require.NotNil(t, result.Guest)
	assert.True(t, result.Guest.Sign)
	assert.Equal(t, "meizu", result.Event.Name)
	assert.Equal(t, []uint64{1}, notifier.signed)

	var g guest.Guest
	require.NoError(t, db.First(&g, 1).Error)
	assert.True(t, g.Sign)
}

func TestSignInTwice(t *testing.T) {
	_, svc, _ := seedCheckin(t)
	ctx := context.Background()

	first, err := svc.SignIn(ctx, 1, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, HintSigned, first.Hint())

	second, err := svc.SignIn(ctx, 1, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, HintAlreadySigned, second.Hint())
}

func TestSignInPhoneNotFound(t *testing.T) {
	_, svc, _ := seedCheckin(t)

	for _, eventID := range []uint64{1, 2} {
		result, err := svc.SignIn(context.Background(), eventID, "10000000000")
		require.NoError(t, err)
		assert.Equal(t, OutcomePhoneNotFound, result.Outcome)
		assert.Equal(t, "Phone number does not exist", result.Hint())
	}
}

func TestSignInEmptyPhone(t *testing.T) {
	_, svc, notifier := seedCheckin(t)

	result, err := svc.SignIn(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, OutcomePhoneNotFound, result.Outcome)
	assert.Equal(t, HintPhoneNotFound, result.Hint())
	assert.Empty(t, notifier.signed)
}

func TestSignInNotInEvent(t *testing.T) {
	db, svc, _ := seedCheckin(t)

	result, err := svc.SignIn(context.Background(), 2, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotInEvent, result.Outcome)
	assert.Equal(t, "There is no corresponding mobile number for this conference", result.Hint())

	// 不属于该发布会的嘉宾状态不变
	var g guest.Guest
	require.NoError(t, db.First(&g, 1).Error)
	assert.False(t, g.Sign)
}

func TestSignInUnknownEvent(t *testing.T) {
	_, svc, _ := seedCheckin(t)

	_, err := svc.SignIn(context.Background(), 404, "15359373849")
	assert.ErrorIs(t, err, repositories.ErrEventNotFound)
}

func TestSignInDuplicateRows(t *testing.T) {
	db, svc, _ := seedCheckin(t)
	require.NoError(t, db.Migrator().DropIndex(&guest.Guest{}, "idx_guest_event_phone"))
	dbtest.CreateGuest(t, db, 1, "alen copy", "15359373849", false)

	_, err := svc.SignIn(context.Background(), 1, "15359373849")
	assert.ErrorIs(t, err, repositories.ErrDuplicateGuest)
}

func TestSignInNotifierFailureKeepsOutcome(t *testing.T) {
	_, svc, notifier := seedCheckin(t)
	notifier.err = errors.New("broker down")

	result, err := svc.SignIn(context.Background(), 1, "15359373849")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSigned, result.Outcome)
}

func TestNewCheckinServiceNilNotifier(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewCheckinService(repositories.NewEventRepository(db), repositories.NewGuestRepository(db), nil)
	assert.IsType(t, NopNotifier{}, svc.notifier)
}
