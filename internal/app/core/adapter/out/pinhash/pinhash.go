package pinhash

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
)

// 支援的 PIN 儲存方式
const (
	SchemeBcrypt = "bcrypt"
	// SchemePlain 僅供沿用舊資料庫 (明文 PIN) 使用
	SchemePlain = "plain"
)

// Bcrypt 以 bcrypt 雜湊 PIN
type Bcrypt struct {
	cost int
}

// NewBcrypt cost <= 0 時使用 bcrypt.DefaultCost
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *Bcrypt) Compare(stored string, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin)) == nil
}

// Plain 明文比對 (constant time)
type Plain struct{}

func (Plain) Hash(pin string) (string, error) {
	return pin, nil
}

func (Plain) Compare(stored string, pin string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(pin)) == 1
}

// New 依設定選擇 PINHasher
func New(scheme string, cost int) (usecase.PINHasher, error) {
	switch scheme {
	case "", SchemeBcrypt:
		return NewBcrypt(cost), nil
	case SchemePlain:
		return Plain{}, nil
	}
	return nil, fmt.Errorf("unknown pin scheme %q", scheme)
}

var (
	_ usecase.PINHasher = (*Bcrypt)(nil)
	_ usecase.PINHasher = Plain{}
)
