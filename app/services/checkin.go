// Package services 业务逻辑
package services

import (
	"context"
	"errors"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
	"guestsign/app/repositories"
	"guestsign/pkg/logger"

	"go.uber.org/zap"
)

// CheckinOutcome 签到结果
type CheckinOutcome int

const (
	// OutcomePhoneNotFound 所有发布会下都没有该手机号
	OutcomePhoneNotFound CheckinOutcome = iota + 1
	// OutcomeNotInEvent 手机号存在，但不属于该发布会
	OutcomeNotInEvent
	// OutcomeAlreadySigned 已签到，不做变更
	OutcomeAlreadySigned
	// OutcomeSigned 本次签到成功
	OutcomeSigned
)

// 签到页提示语，页面与测试都依赖这些文案
const (
	HintPhoneNotFound = "Phone number does not exist"
	HintNotInEvent    = "There is no corresponding mobile number for this conference"
	HintAlreadySigned = "You've signed in"
	HintSigned        = "Sign in successfully"
)

// Hint 结果对应的提示语
func (o CheckinOutcome) Hint() string {
	switch o {
	case OutcomePhoneNotFound:
		return HintPhoneNotFound
	case OutcomeNotInEvent:
		return HintNotInEvent
	case OutcomeAlreadySigned:
		return HintAlreadySigned
	case OutcomeSigned:
		return HintSigned
	}
	return ""
}

// CheckinResult 一次签到请求的结果，Guest 仅在签到成功时返回
type CheckinResult struct {
	Event   *event.Event
	Outcome CheckinOutcome
	Guest   *guest.Guest
}

// Hint 提示语
func (r *CheckinResult) Hint() string {
	return r.Outcome.Hint()
}

// CheckinService 签到服务
type CheckinService struct {
	events   *repositories.EventRepository
	guests   *repositories.GuestRepository
	notifier Notifier
}

// NewCheckinService 创建签到服务，notifier 为 nil 时不发送通知
func NewCheckinService(events *repositories.EventRepository, guests *repositories.GuestRepository, notifier Notifier) *CheckinService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CheckinService{
		events:   events,
		guests:   guests,
		notifier: notifier,
	}
}

// Event 签到页使用，不存在时返回 repositories.ErrEventNotFound
func (s *CheckinService) Event(ctx context.Context, eventID uint64) (*event.Event, error) {
	return s.events.Get(ctx, eventID)
}

// SignIn 按手机号为嘉宾签到
//
// 先检查手机号是否存在于任何发布会，再检查是否属于当前发布会，
// 两种情况给出不同提示。签到标记只会从 false 变为 true
func (s *CheckinService) SignIn(ctx context.Context, eventID uint64, phone string) (*CheckinResult, error) {
	e, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	result := &CheckinResult{Event: e}

	exists, err := s.guests.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !exists {
		result.Outcome = OutcomePhoneNotFound
		return result, nil
	}

	exists, err = s.guests.ExistsInEvent(ctx, eventID, phone)
	if err != nil {
		return nil, err
	}
	if !exists {
		result.Outcome = OutcomeNotInEvent
		return result, nil
	}

	g, err := s.guests.GetInEvent(ctx, eventID, phone)
	if errors.Is(err, repositories.ErrGuestNotFound) {
		// 两次查询之间记录被删除
		result.Outcome = OutcomeNotInEvent
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	if g.IsSigned() {
		result.Outcome = OutcomeAlreadySigned
		return result, nil
	}

	changed, err := s.guests.MarkSigned(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if !changed {
		result.Outcome = OutcomeAlreadySigned
		return result, nil
	}

	g.Sign = true
	result.Outcome = OutcomeSigned
	result.Guest = g

	if err := s.notifier.GuestSigned(ctx, e, g); err != nil {
		logger.Warn("Checkin", zap.String("notify", err.Error()), zap.Uint64("guest_id", g.ID))
	}

	return result, nil
}
