// Package session 服务端会话
//
// 浏览器只持有不透明的 token，登录态保存在 Store 中
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound 会话不存在或已过期
var ErrSessionNotFound = errors.New("session not found")

// Session 登录会话
type Session struct {
	Token     string    `json:"token"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store 会话存储
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Manager 负责会话的创建、读取与销毁
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewManager 创建会话管理器
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// TTL 会话有效期
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start 为登录成功的用户创建会话
func (m *Manager) Start(ctx context.Context, userID uint64, username string) (*Session, error) {
	now := m.now()
	s := &Session{
		Token:     NewToken(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Load 根据 token 读取会话
func (m *Manager) Load(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !s.ExpiresAt.IsZero() && !m.now().Before(s.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Destroy 注销会话
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// NewToken 生成 64 位十六进制的随机 token
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
