package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultResetCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "email:code:reset"
)

var (
	ErrCodeNotFound  = errors.New("reset code not found")
	ErrCodeSetFailed = errors.New("reset code set failed")
	ErrCodeDelFailed = errors.New("reset code delete failed")
)

// EmailRepository 密码重置验证码存储，TTL 内一次性使用
type EmailRepository struct{}

func (e *EmailRepository) SetResetCode(email, code string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Set(context.Background(), key, code, DefaultResetCodeTTL).Err(); err != nil {
		return ErrCodeSetFailed
	}
	return nil
}

func (e *EmailRepository) GetResetCode(email string) (string, error) {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		// 不存在或已过期
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteResetCode 校验通过后删除，保证一次性（幂等）
func (e *EmailRepository) DeleteResetCode(email string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
