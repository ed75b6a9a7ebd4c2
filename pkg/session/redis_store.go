package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"guestsign/pkg/redis"
)

// RedisStore 基于 Redis 的会话存储，过期由 Redis TTL 负责
type RedisStore struct {
	client *redis.RedisClient
	prefix string
}

// NewRedisStore 创建 Redis 会话存储，prefix 形如 "guestsign:session:"
func NewRedisStore(client *redis.RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Save 保存会话
func (s *RedisStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+sess.Token, b, ttl)
}

// Get 读取会话
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.prefix+token)
	if errors.Is(err, redis.ErrNil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete 删除会话
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token)
}
