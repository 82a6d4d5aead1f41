package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore 登入 session 的 Redis 存放。
// token 為不透明的 uuid，多台 server 共用同一份 session。
type SessionStore interface {
	// 建立：寫入 token -> userID 映射並設定 TTL
	Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// 解析：token 換回 userID，同時滑動延長 TTL
	Resolve(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error)
	// 註銷：登出時刪除 token
	Revoke(ctx context.Context, token string) error
}

type SessionStoreImpl struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) SessionStore {
	return &SessionStoreImpl{
		client: client,
	}
}

// session key
func (s *SessionStoreImpl) getSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *SessionStoreImpl) Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := s.getSessionKey(token)
	return s.client.Set(ctx, key, userID.String(), ttl).Err()
}

func (s *SessionStoreImpl) Resolve(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error) {
	key := s.getSessionKey(token)
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session value: %v", err)
	}

	// 滑動過期，活躍使用者不會被登出
	if ttl > 0 {
		_ = s.client.Expire(ctx, key, ttl).Err()
	}

	return userID, nil
}

func (s *SessionStoreImpl) Revoke(ctx context.Context, token string) error {
	key := s.getSessionKey(token)
	return s.client.Del(ctx, key).Err()
}
