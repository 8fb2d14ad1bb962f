package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/pkg/wal"
)

// ErrWALWriteFailed 寫入 WAL 失敗，該筆異動不會生效
var ErrWALWriteFailed = errors.New("wal write failed")

// WAL 紀錄類型
const (
	opCreate   = "create"
	opDeposit  = "deposit"
	opWithdraw = "withdraw"
	opPIN      = "pin"
)

// walRecord 寫進 WAL 的一筆異動
type walRecord struct {
	Op      string        `json:"op"`
	Account string        `json:"account"`
	PIN     string        `json:"pin,omitempty"`
	Balance domain.Amount `json:"balance,omitempty"`
	Entry   *domain.Entry `json:"entry,omitempty"`
}

// book 帳本狀態與操作，本身不做同步
// MutexLedger 以讀寫鎖保護，LMAXLedger 只在單一 goroutine 內存取
//
// 結構:
//
//	accounts: 帳戶資料 Map
//	history: 每個帳戶的異動紀錄 (舊的在前)
//	wal: Write-Ahead Log 實例，nil 代表不持久化
type book struct {
	accounts map[string]*domain.Account
	history  map[string][]domain.Entry
	sequence uint64
	wal      *wal.WAL
	now      func() time.Time
}

func newBook(accounts map[string]*domain.Account, w *wal.WAL) (*book, error) {
	if accounts == nil {
		accounts = make(map[string]*domain.Account)
	}
	b := &book{
		accounts: accounts,
		history:  make(map[string][]domain.Entry),
		wal:      w,
		now:      time.Now,
	}
	if err := b.recoverFromWAL(); err != nil {
		return nil, err
	}
	return b, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
func (b *book) recoverFromWAL() error {
	if b.wal == nil {
		return nil
	}
	return b.wal.ReadAll(func(jsonRaw []byte) error {
		var rec walRecord
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return err
		}
		if err := b.apply(&rec); err != nil {
			return fmt.Errorf("replay %s on %s: %w", rec.Op, rec.Account, err)
		}
		return nil
	})
}

// apply 套用一筆已寫入 WAL 的異動
func (b *book) apply(rec *walRecord) error {
	switch rec.Op {
	case opCreate:
		b.accounts[rec.Account] = domain.NewAccount(rec.Account, rec.PIN, rec.Balance)
		return nil
	case opPIN:
		account, ok := b.accounts[rec.Account]
		if !ok {
			return domain.ErrAccountNotFound
		}
		account.PIN = rec.PIN
		return nil
	}

	if rec.Entry == nil {
		return fmt.Errorf("wal record %q without entry", rec.Op)
	}
	account, ok := b.accounts[rec.Account]
	if !ok {
		return domain.ErrAccountNotFound
	}
	entry := *rec.Entry
	switch rec.Op {
	case opDeposit:
		if err := account.Deposit(entry.Amount); err != nil {
			return err
		}
	case opWithdraw:
		ok, err := account.Withdraw(entry.Amount)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("replayed withdrawal overdraws account")
		}
	default:
		return fmt.Errorf("unknown wal op %q", rec.Op)
	}
	b.sequence++
	entry.Sequence = b.sequence
	b.history[rec.Account] = append(b.history[rec.Account], entry)
	return nil
}

// commit 先寫 WAL 再套用到記憶體
func (b *book) commit(rec *walRecord) error {
	// 1. 寫入 WAL (Critical Path)
	if b.wal != nil {
		if err := b.wal.Write(rec); err != nil {
			return fmt.Errorf("%w: %v", ErrWALWriteFailed, err)
		}
	}
	// 2. 套用
	return b.apply(rec)
}

func (b *book) loadPIN(accountNumber string) (string, error) {
	account, ok := b.accounts[accountNumber]
	if !ok {
		return "", domain.ErrAccountNotFound
	}
	return account.PIN, nil
}

func (b *book) balance(accountNumber string) (domain.Amount, error) {
	account, ok := b.accounts[accountNumber]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

func (b *book) deposit(accountNumber string, amount domain.Amount) (domain.Amount, error) {
	account, ok := b.accounts[accountNumber]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	entry := domain.NewEntry(accountNumber, domain.EntryKindDeposit, amount, account.Balance+amount, b.now())
	if err := b.commit(&walRecord{Op: opDeposit, Account: accountNumber, Entry: &entry}); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// withdraw 檢查餘額與扣款必須在同一個臨界區內
func (b *book) withdraw(accountNumber string, amount domain.Amount) (bool, domain.Amount, error) {
	account, ok := b.accounts[accountNumber]
	if !ok {
		return false, 0, domain.ErrAccountNotFound
	}
	if account.Balance < amount {
		return false, account.Balance, nil
	}
	entry := domain.NewEntry(accountNumber, domain.EntryKindWithdraw, amount, account.Balance-amount, b.now())
	if err := b.commit(&walRecord{Op: opWithdraw, Account: accountNumber, Entry: &entry}); err != nil {
		return false, 0, err
	}
	return true, account.Balance, nil
}

func (b *book) updatePIN(accountNumber string, pinHash string) error {
	if _, ok := b.accounts[accountNumber]; !ok {
		return domain.ErrAccountNotFound
	}
	return b.commit(&walRecord{Op: opPIN, Account: accountNumber, PIN: pinHash})
}

func (b *book) create(account *domain.Account) error {
	if _, ok := b.accounts[account.Number]; ok {
		return domain.ErrAccountAlreadyExists
	}
	return b.commit(&walRecord{Op: opCreate, Account: account.Number, PIN: account.PIN, Balance: account.Balance})
}

// entries 依查詢條件回傳異動紀錄，新的在前
func (b *book) entries(accountNumber string, query domain.HistoryQuery) []domain.Entry {
	all := b.history[accountNumber]
	limit := query.EffectiveLimit()
	result := make([]domain.Entry, 0, min(limit, len(all)))
	for i := len(all) - 1; i >= 0 && len(result) < limit; i-- {
		if query.Kind != 0 && all[i].Kind != query.Kind {
			continue
		}
		result = append(result, all[i])
	}
	return result
}
