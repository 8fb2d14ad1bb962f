package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

const issuer = "go-atm-ledger"

// TokenManager 把 domain.Session 簽成 HS256 token，讓遠端呼叫端持有
type TokenManager struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes")
	}
	return &TokenManager{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Issue 簽發 token，subject 為帳號
func (m *TokenManager) Issue(sess domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  sess.AccountNumber,
		IssuedAt: jwt.NewNumericDate(sess.IssuedAt),
	}
	if !sess.ExpiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(sess.ExpiresAt)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse 驗證簽章與效期，失敗一律回傳 domain.ErrInvalidSession
func (m *TokenManager) Parse(tokenStr string) (domain.Session, error) {
	var claims jwt.RegisteredClaims
	token, err := m.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" || claims.Issuer != issuer {
		return domain.Session{}, domain.ErrInvalidSession
	}

	sess := domain.Session{AccountNumber: claims.Subject}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
