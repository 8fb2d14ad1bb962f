package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amount 使用 int64，並定義精度：小數點後 2 位
const (
	CurrencyScale = 100
	currencyExp   = 2
)

// Amount 以最小貨幣單位 (分) 表示的金額
type Amount int64

// ParseAmount 解析使用者輸入的金額字串，例如 "150.00"
//
// 參數:
//
//	s: 金額字串
//
// 回傳:
//
//	Amount: 以分為單位的金額
//	error: 格式錯誤、非正數或超過兩位小數時回傳 ErrInvalidAmount
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromDecimal(d)
}

// FromDecimal 將 decimal 轉為 Amount，不允許捨入
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return 0, ErrInvalidAmount
	}
	scaled := d.Shift(currencyExp)
	if !scaled.IsInteger() || scaled.GreaterThan(decimal.NewFromInt(maxAmount)) {
		return 0, ErrInvalidAmount
	}
	return Amount(scaled.IntPart()), nil
}

// maxAmount 避免加總時溢位
const maxAmount = int64(1) << 53

// Decimal 回傳對應的 decimal 值
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -currencyExp)
}

// String 固定兩位小數，例如 150.00
func (a Amount) String() string {
	return a.Decimal().StringFixed(currencyExp)
}

// Validate 存提款金額必須為正數
func (a Amount) Validate() error {
	if a <= 0 || int64(a) > maxAmount {
		return ErrInvalidAmount
	}
	return nil
}

// ParseBalance 解析餘額字串，與 ParseAmount 不同的是允許 0
func ParseBalance(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	if d.IsZero() {
		return 0, nil
	}
	return FromDecimal(d)
}
