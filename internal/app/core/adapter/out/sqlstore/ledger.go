package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-atm-ledger/pkg/database"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	AccountNumber string `gorm:"column:account_number;primaryKey;size:32"`
	PIN           string `gorm:"column:pin;size:255;not null"`
	Balance       int64  `gorm:"not null;default:0"` // 以分為單位
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlEntry 對應資料庫的 ledger_entries 表 (只新增不修改)
type sqlEntry struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	RefID         string `gorm:"column:ref_id;size:36;uniqueIndex"` // 對應 domain.Entry.RefID
	AccountNumber string `gorm:"column:account_number;size:32;index"`
	Kind          uint8  `gorm:"not null"`
	Amount        int64  `gorm:"not null"`
	BalanceAfter  int64  `gorm:"not null"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli"`
}

func (*sqlEntry) TableName() string {
	return "ledger_entries"
}

// WithdrawStrategy 提款時防止超扣的方式
type WithdrawStrategy string

const (
	// WithdrawCAS 以 UPDATE ... WHERE balance >= ? 的條件更新，檢查影響筆數
	WithdrawCAS WithdrawStrategy = "cas"
	// WithdrawLock 先 SELECT ... FOR UPDATE 鎖住該列再扣款 (悲觀鎖)
	WithdrawLock WithdrawStrategy = "lock"
)

// ParseWithdrawStrategy 空字串視為 cas
func ParseWithdrawStrategy(s string) (WithdrawStrategy, error) {
	switch WithdrawStrategy(s) {
	case "", WithdrawCAS:
		return WithdrawCAS, nil
	case WithdrawLock:
		return WithdrawLock, nil
	}
	return "", fmt.Errorf("unknown withdraw strategy %q", s)
}

type SQLLedger struct {
	client   *database.Client
	strategy WithdrawStrategy
	now      func() time.Time
}

// Option 設定 SQLLedger
type Option func(*SQLLedger)

// WithWithdrawStrategy 指定提款策略
func WithWithdrawStrategy(s WithdrawStrategy) Option {
	return func(l *SQLLedger) {
		l.strategy = s
	}
}

// WithClock 指定時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(l *SQLLedger) {
		l.now = now
	}
}

func NewSQLLedger(client *database.Client, opts ...Option) *SQLLedger {
	ledger := &SQLLedger{
		client:   client,
		strategy: WithdrawCAS,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(ledger)
	}
	return ledger
}

// Migrate 建立或更新資料表
func (ledger *SQLLedger) Migrate(ctx context.Context) error {
	return ledger.client.DB().WithContext(ctx).AutoMigrate(&sqlAccount{}, &sqlEntry{})
}

// LoadPIN 取得帳戶儲存的 PIN
func (ledger *SQLLedger) LoadPIN(ctx context.Context, accountNumber string) (string, error) {
	var account sqlAccount
	err := ledger.client.DB().WithContext(ctx).
		Select("pin").
		Where("account_number = ?", accountNumber).
		Take(&account).Error
	if err != nil {
		return "", notFound(err)
	}
	return account.PIN, nil
}

// GetAccountBalance 取得帳戶餘額
func (ledger *SQLLedger) GetAccountBalance(ctx context.Context, accountNumber string) (domain.Amount, error) {
	balance, err := readBalance(ledger.client.DB().WithContext(ctx), accountNumber)
	if err != nil {
		return 0, err
	}
	return domain.Amount(balance), nil
}

// Deposit 存款
// balance = balance + ? 單一敘述遞增，不做 read-modify-write，避免同時存款時遺失更新
func (ledger *SQLLedger) Deposit(ctx context.Context, accountNumber string, amount domain.Amount) (domain.Amount, error) {
	var balance int64
	err := ledger.client.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&sqlAccount{}).
			Where("account_number = ?", accountNumber).
			Update("balance", gorm.Expr("balance + ?", int64(amount)))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}

		var err error
		if balance, err = readBalance(tx, accountNumber); err != nil {
			return err
		}
		return ledger.appendEntry(tx, accountNumber, domain.EntryKindDeposit, amount, balance)
	})
	if err != nil {
		return 0, err
	}
	return domain.Amount(balance), nil
}

// Withdraw 提款
//
// 讀取餘額、檢查、扣款與寫入異動紀錄都在同一個交易內完成，
// 任何錯誤都會整筆 rollback，不會出現只扣款沒有紀錄的情況。
//
// 回傳:
//
//	bool: 是否扣款成功 (餘額不足為 false，不是錯誤)
//	domain.Amount: 交易後餘額
//	error: domain.ErrAccountNotFound 或資料庫錯誤
func (ledger *SQLLedger) Withdraw(ctx context.Context, accountNumber string, amount domain.Amount) (bool, domain.Amount, error) {
	var (
		ok      bool
		balance int64
	)
	err := ledger.client.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		switch ledger.strategy {
		case WithdrawLock:
			ok, balance, err = withdrawLocked(tx, accountNumber, int64(amount))
		default:
			ok, balance, err = withdrawCAS(tx, accountNumber, int64(amount))
		}
		if err != nil || !ok {
			return err
		}
		return ledger.appendEntry(tx, accountNumber, domain.EntryKindWithdraw, amount, balance)
	})
	if err != nil {
		return false, 0, err
	}
	return ok, domain.Amount(balance), nil
}

// withdrawCAS 條件式更新：只有餘額足夠時才會影響到一筆資料
func withdrawCAS(tx *gorm.DB, accountNumber string, amount int64) (bool, int64, error) {
	res := tx.Model(&sqlAccount{}).
		Where("account_number = ? AND balance >= ?", accountNumber, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, 0, res.Error
	}
	// 影響 0 筆代表帳戶不存在或餘額不足，讀一次餘額來區分
	balance, err := readBalance(tx, accountNumber)
	if err != nil {
		return false, 0, err
	}
	return res.RowsAffected == 1, balance, nil
}

// withdrawLocked 取得鎖定帳號 悲觀鎖
// SQLite 不支援 FOR UPDATE，要靠單一連線或 _txlock=immediate 讓交易在 BEGIN 時取得寫鎖；
// deferred 交易在多條連線下會在扣款時回 "database is locked"，不會超扣
func withdrawLocked(tx *gorm.DB, accountNumber string, amount int64) (bool, int64, error) {
	query := tx
	if tx.Dialector.Name() != database.DriverSQLite {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var account sqlAccount
	if err := query.Where("account_number = ?", accountNumber).Take(&account).Error; err != nil {
		return false, 0, notFound(err)
	}
	if account.Balance < amount {
		return false, account.Balance, nil
	}

	res := tx.Model(&sqlAccount{}).
		Where("account_number = ?", accountNumber).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, 0, res.Error
	}
	return true, account.Balance - amount, nil
}

// UpdatePIN 無條件更新 PIN，單一敘述不需要交易
func (ledger *SQLLedger) UpdatePIN(ctx context.Context, accountNumber string, pinHash string) error {
	db := ledger.client.DB().WithContext(ctx)
	res := db.Model(&sqlAccount{}).
		Where("account_number = ?", accountNumber).
		Update("pin", pinHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL 在值未改變時也會回報 0 筆，確認帳戶是否存在
		_, err := readBalance(db, accountNumber)
		return err
	}
	return nil
}

// CreateAccount 建立帳戶，已存在時回傳 domain.ErrAccountAlreadyExists
func (ledger *SQLLedger) CreateAccount(ctx context.Context, account *domain.Account) error {
	res := ledger.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sqlAccount{
			AccountNumber: account.Number,
			PIN:           account.PIN,
			Balance:       int64(account.Balance),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountAlreadyExists
	}
	return nil
}

// appendEntry 建立異動紀錄，必須在扣款/存款的同一個交易內呼叫
func (ledger *SQLLedger) appendEntry(tx *gorm.DB, accountNumber string, kind domain.EntryKind, amount domain.Amount, balance int64) error {
	entry := domain.NewEntry(accountNumber, kind, amount, domain.Amount(balance), ledger.now())
	return tx.Create(&sqlEntry{
		RefID:         entry.RefID.String(),
		AccountNumber: entry.AccountNumber,
		Kind:          uint8(entry.Kind),
		Amount:        int64(entry.Amount),
		BalanceAfter:  int64(entry.BalanceAfter),
		CreatedAt:     entry.CreatedAt,
	}).Error
}

func readBalance(db *gorm.DB, accountNumber string) (int64, error) {
	var account sqlAccount
	err := db.Select("balance").
		Where("account_number = ?", accountNumber).
		Take(&account).Error
	if err != nil {
		return 0, notFound(err)
	}
	return account.Balance, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrAccountNotFound
	}
	return err
}

var _ usecase.Ledger = (*SQLLedger)(nil)
