package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-atm-ledger/pkg/wal"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	book: 帳戶、異動紀錄與 WAL
//	mu: 讀寫鎖，查詢用讀鎖，所有異動用寫鎖
type MutexLedger struct {
	book *book
	mu   sync.RWMutex
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	accounts: 初始帳戶資料 Map (可為 nil)
//	wal: Write-Ahead Log 實例 (可為 nil)
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexLedger(accounts map[string]*domain.Account, wal *wal.WAL) (*MutexLedger, error) {
	b, err := newBook(accounts, wal)
	if err != nil {
		return nil, err
	}
	return &MutexLedger{book: b}, nil
}

// LoadPIN 取得帳戶儲存的 PIN
func (m *MutexLedger) LoadPIN(ctx context.Context, accountNumber string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.loadPIN(accountNumber)
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (m *MutexLedger) GetAccountBalance(ctx context.Context, accountNumber string) (domain.Amount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.balance(accountNumber)
}

// Deposit 處理存款邏輯
func (m *MutexLedger) Deposit(ctx context.Context, accountNumber string, amount domain.Amount) (domain.Amount, error) {
	if err := amount.Validate(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.deposit(accountNumber, amount)
}

// Withdraw 處理提款邏輯
// 檢查與扣款在同一把寫鎖內完成，同帳戶的提款會被序列化
func (m *MutexLedger) Withdraw(ctx context.Context, accountNumber string, amount domain.Amount) (bool, domain.Amount, error) {
	if err := amount.Validate(); err != nil {
		return false, 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.withdraw(accountNumber, amount)
}

// UpdatePIN 更新 PIN
func (m *MutexLedger) UpdatePIN(ctx context.Context, accountNumber string, pinHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.updatePIN(accountNumber, pinHash)
}

// CreateAccount 建立帳戶
func (m *MutexLedger) CreateAccount(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.create(account)
}

// History 查詢異動紀錄，新的在前
func (m *MutexLedger) History(ctx context.Context, accountNumber string, query domain.HistoryQuery) ([]domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.entries(accountNumber, query), nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
