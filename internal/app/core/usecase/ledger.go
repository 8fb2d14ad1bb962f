package usecase

import (
	"context"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

// Ledger 是帳務儲存層的介面
//
// 實作只需回傳 domain.ErrAccountNotFound 或原始錯誤，
// 錯誤分類與 log 由 CoreUseCase 負責。
type Ledger interface {
	// LoadPIN 取得帳戶儲存的 PIN (hash)
	LoadPIN(ctx context.Context, accountNumber string) (string, error)
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, accountNumber string) (domain.Amount, error)
	// Deposit 以單一遞增敘述存款，回傳新餘額
	Deposit(ctx context.Context, accountNumber string, amount domain.Amount) (domain.Amount, error)
	// Withdraw 在同一個交易內檢查餘額並扣款
	// 餘額不足時回傳 (false, 目前餘額, nil)
	Withdraw(ctx context.Context, accountNumber string, amount domain.Amount) (bool, domain.Amount, error)
	// UpdatePIN 無條件更新 PIN
	UpdatePIN(ctx context.Context, accountNumber string, pinHash string) error
	// History 查詢異動紀錄，新的在前
	History(ctx context.Context, accountNumber string, query domain.HistoryQuery) ([]domain.Entry, error)
	// CreateAccount 建立帳戶 (開帳/初始資料用)，已存在時回傳 domain.ErrAccountAlreadyExists
	CreateAccount(ctx context.Context, account *domain.Account) error
}

// PINHasher 負責 PIN 的雜湊與比對
type PINHasher interface {
	Hash(pin string) (string, error)
	Compare(stored string, pin string) bool
}
