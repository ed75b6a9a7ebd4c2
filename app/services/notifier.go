package services

import (
	"context"
	"time"

	"guestsign/app/models/event"
	"guestsign/app/models/guest"
)

// RoutingKeyGuestSigned 签到成功消息的 routing key
const RoutingKeyGuestSigned = "guest.signed"

// Notifier 签到成功后的通知出口
type Notifier interface {
	GuestSigned(ctx context.Context, e *event.Event, g *guest.Guest) error
}

// JSONPublisher 由 mq.Publisher 实现
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// GuestSignedMessage 签到成功消息体
type GuestSignedMessage struct {
	EventID   uint64    `json:"event_id"`
	EventName string    `json:"event_name"`
	GuestID   uint64    `json:"guest_id"`
	Realname  string    `json:"realname"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	SignedAt  time.Time `json:"signed_at"`
}

// MQNotifier 将签到成功消息发布到 RabbitMQ
type MQNotifier struct {
	publisher JSONPublisher
	now       func() time.Time
}

// NewMQNotifier 创建 RabbitMQ 通知器
func NewMQNotifier(publisher JSONPublisher) *MQNotifier {
	return &MQNotifier{publisher: publisher, now: time.Now}
}

// GuestSigned 发布 guest.signed 消息
func (n *MQNotifier) GuestSigned(ctx context.Context, e *event.Event, g *guest.Guest) error {
	return n.publisher.PublishJSON(ctx, RoutingKeyGuestSigned, GuestSignedMessage{
		EventID:   e.ID,
		EventName: e.Name,
		GuestID:   g.ID,
		Realname:  g.Realname,
		Phone:     g.Phone,
		Email:     g.Email,
		SignedAt:  n.now().UTC(),
	})
}

// NopNotifier 未启用消息队列时使用
type NopNotifier struct{}

// GuestSigned 什么也不做
func (NopNotifier) GuestSigned(context.Context, *event.Event, *guest.Guest) error {
	return nil
}
