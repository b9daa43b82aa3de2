package service

import (
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendResetCode 发送重置密码验证码
func (s *EmailService) SendResetCode(email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetResetCode(email, code); err != nil {
		return err
	}

	html := pkg.ResetCodeHTML(code, redis.DefaultResetCodeTTL)
	if err = s.emailCfg.Send(email, "密码重置验证码", html); err != nil {
		// 邮件没发出去就把码作废，避免死码占位
		_ = s.rds.DeleteResetCode(email)
		return err
	}
	return nil
}

// VerifyResetCode 校验验证码并一次性删除
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	val, err := s.rds.GetResetCode(email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteResetCode(email); err != nil {
		return false, err
	}
	return true, nil
}
