package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryKind 交易類型
// 為了節省空間，使用 uint8
type EntryKind uint8

const (
	// 存款
	EntryKindDeposit EntryKind = 1
	// 提款
	EntryKindWithdraw EntryKind = 2
)

func (k EntryKind) String() string {
	switch k {
	case EntryKindDeposit:
		return "deposit"
	case EntryKindWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// ParseEntryKind 解析 "deposit" / "withdraw"，空字串代表不過濾
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "deposit":
		return EntryKindDeposit, nil
	case "withdraw":
		return EntryKindWithdraw, nil
	}
	return 0, fmt.Errorf("unknown entry kind %q", s)
}

// Entry 帳戶異動紀錄，每筆成功的存提款各一筆
type Entry struct {
	// Sequence: 資料庫自增序號，越大越新
	Sequence uint64
	// RefID: 外部追蹤號 (UUID)
	RefID         uuid.UUID
	AccountNumber string
	Kind          EntryKind
	Amount        Amount
	// BalanceAfter: 異動後餘額
	BalanceAfter Amount
	// CreatedAt: unix milli
	CreatedAt int64
}

// NewEntry 建立一筆新的異動紀錄，RefID 與時間在此產生
func NewEntry(account string, kind EntryKind, amount, balanceAfter Amount, now time.Time) Entry {
	return Entry{
		RefID:         uuid.New(),
		AccountNumber: account,
		Kind:          kind,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		CreatedAt:     now.UnixMilli(),
	}
}

// Time 回傳 CreatedAt 的 time.Time
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// Line 匯出用的單行格式
// 例如: 2026-10-18 10:04:05 | WITHDRAW | 150.00 | balance 0.00
func (e Entry) Line() string {
	return fmt.Sprintf("%s | %s | %s | balance %s",
		e.Time().Format(time.DateTime),
		strings.ToUpper(e.Kind.String()),
		e.Amount,
		e.BalanceAfter,
	)
}

// DefaultHistoryLimit 未指定筆數時的預設上限
const DefaultHistoryLimit = 50

// HistoryQuery 查詢交易紀錄的條件
type HistoryQuery struct {
	// Kind 為 0 時不過濾
	Kind EntryKind
	// Limit <= 0 時使用 DefaultHistoryLimit
	Limit int
}

// EffectiveLimit 回傳實際使用的筆數上限
func (q HistoryQuery) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return q.Limit
}

// WriteEntries 每筆紀錄輸出一行 (以換行結尾)，欄位已格式化不需跳脫
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.Line() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
