package services

import (
	"context"
	"errors"
	"time"

	"guestsign/app/models/user"
	"guestsign/app/repositories"
	"guestsign/pkg/auth"
	"guestsign/pkg/logger"
	"guestsign/pkg/session"
)

// ErrInvalidCredentials 用户名或密码错误，包括空值和被禁用的账号
var ErrInvalidCredentials = errors.New("username or password error")

// AuthService 管理员登录、注销与会话校验
type AuthService struct {
	users    *repositories.UserRepository
	sessions *session.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(users *repositories.UserRepository, sessions *session.Manager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Sessions 会话管理器，控制器设置 cookie 有效期时使用
func (s *AuthService) Sessions() *session.Manager {
	return s.sessions
}

// Login 校验用户名密码并创建会话
func (s *AuthService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive || !u.ComparePassword(password) {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Start(ctx, u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	// 记录登录时间失败不影响登录
	logger.LogIf(s.users.TouchLastLogin(ctx, u.ID, time.Now()))

	return sess, nil
}

// Authenticate 根据 token 还原身份，未登录返回 session.ErrSessionNotFound
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	sess, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return &auth.Identity{
		UserID:   sess.UserID,
		Username: sess.Username,
		Token:    sess.Token,
	}, nil
}

// Logout 注销会话
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// EnsureAdmin 管理员不存在时创建，返回是否新建
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, err
	}

	err = s.users.Create(ctx, &user.User{
		Username: username,
		Email:    email,
		Password: password,
		IsActive: true,
	})
	return err == nil, err
}
