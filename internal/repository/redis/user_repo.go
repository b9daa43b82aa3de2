package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

// SessionTTL 登录态有效期，每次访问命中都会滑动续期
const SessionTTL = 30 * time.Minute

func sessionKey(userID uint64) string {
	return fmt.Sprintf("session:user:%d", userID)
}

// UserRepository 每个用户只保留最新一份登录 token，旧 cookie 自动失效
type UserRepository struct{}

func (r *UserRepository) AddUserToken(userID uint64, token string) error {
	if err := Client.Set(context.Background(), sessionKey(userID), token, SessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *UserRepository) GetUserToken(userID uint64) (string, error) {
	token, err := Client.Get(context.Background(), sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendUserToken 滑动续期
func (r *UserRepository) ExtendUserToken(userID uint64) error {
	if err := Client.Expire(context.Background(), sessionKey(userID), SessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *UserRepository) DeleteUserToken(userID uint64) error {
	if err := Client.Del(context.Background(), sessionKey(userID)).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
