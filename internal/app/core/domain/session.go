package domain

import "time"

// Session 已通過驗證的操作階段
// 取代全域的「目前登入帳號」，每次操作都明確傳入
type Session struct {
	AccountNumber string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// Valid 檢查帳號不為空且尚未過期
func (s Session) Valid(now time.Time) error {
	if s.AccountNumber == "" {
		return ErrInvalidSession
	}
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return ErrInvalidSession
	}
	return nil
}
