package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-atm-ledger/pkg/wal"
)

// ErrLedgerStopped 核心迴圈已停止，請求不會被處理
var ErrLedgerStopped = errors.New("ledger stopped")

// request 請求包裝 channel，讓呼叫端可以等待結果
type request struct {
	run  func(b *book)
	done chan struct{}
}

// LMAXLedger 單一 goroutine 持有帳本狀態，所有讀寫都排進輸送帶依序處理
// 不需要任何鎖，同帳戶的提款自然被序列化
type LMAXLedger struct {
	book *book
	// 輸送帶 負責接收請求
	requests chan *request
	// Pool 減少 GC 壓力
	requestPool sync.Pool

	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例，需呼叫 Start 才會開始處理請求
//
// 參數:
//
//	accounts: 初始帳戶資料 Map (可為 nil)
//	wal: Write-Ahead Log 實例 (可為 nil)
//
// 回傳:
//
//	*LMAXLedger: LMAXLedger 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewLMAXLedger(accounts map[string]*domain.Account, wal *wal.WAL) (*LMAXLedger, error) {
	// 在啟動前先恢復資料 (單執行緒)
	b, err := newBook(accounts, wal)
	if err != nil {
		return nil, err
	}
	return &LMAXLedger{
		book:     b,
		requests: make(chan *request, 1000), // Buffer 1000
		requestPool: sync.Pool{
			New: func() any {
				return &request{done: make(chan struct{}, 1)}
			},
		},
		stopped: make(chan struct{}),
	}, nil
}

// Start 啟動核心引擎 (非同步)，ctx 結束或呼叫 Stop 時會先處理完輸送帶上的請求
func (l *LMAXLedger) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go l.run(ctx)
}

// Stop 停止核心引擎並等待迴圈結束
func (l *LMAXLedger) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.stopped
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			l.drain()
			return
		case req := <-l.requests:
			l.process(req)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case req := <-l.requests:
			l.process(req)
		default:
			return
		}
	}
}

func (l *LMAXLedger) process(req *request) {
	req.run(l.book)
	req.done <- struct{}{}
}

// post 把請求放上輸送帶並等待處理完成
// 放上之後不再理會 ctx，避免回報失敗但異動其實已生效
//
// PostRequest(等待) -> Channel -> Run Loop (核心) -> WAL -> Map Update -> done -> PostRequest(收到結果)
func (l *LMAXLedger) post(ctx context.Context, fn func(b *book)) error {
	req := l.requestPool.Get().(*request)
	req.run = fn

	select {
	case l.requests <- req:
	case <-l.stopped:
		l.requestPool.Put(req)
		return ErrLedgerStopped
	case <-ctx.Done():
		l.requestPool.Put(req)
		return ctx.Err()
	}

	select {
	case <-req.done:
	case <-l.stopped:
		// 迴圈結束前可能剛好處理完
		select {
		case <-req.done:
		default:
			return ErrLedgerStopped
		}
	}
	req.run = nil
	l.requestPool.Put(req)
	return nil
}

// LoadPIN 取得帳戶儲存的 PIN
func (l *LMAXLedger) LoadPIN(ctx context.Context, accountNumber string) (string, error) {
	var (
		pin string
		err error
	)
	if postErr := l.post(ctx, func(b *book) { pin, err = b.loadPIN(accountNumber) }); postErr != nil {
		return "", postErr
	}
	return pin, err
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (l *LMAXLedger) GetAccountBalance(ctx context.Context, accountNumber string) (domain.Amount, error) {
	var (
		balance domain.Amount
		err     error
	)
	if postErr := l.post(ctx, func(b *book) { balance, err = b.balance(accountNumber) }); postErr != nil {
		return 0, postErr
	}
	return balance, err
}

// Deposit 處理存款邏輯
func (l *LMAXLedger) Deposit(ctx context.Context, accountNumber string, amount domain.Amount) (domain.Amount, error) {
	if err := amount.Validate(); err != nil {
		return 0, err
	}
	var (
		balance domain.Amount
		err     error
	)
	if postErr := l.post(ctx, func(b *book) { balance, err = b.deposit(accountNumber, amount) }); postErr != nil {
		return 0, postErr
	}
	return balance, err
}

// Withdraw 處理提款邏輯，檢查與扣款都在核心迴圈內完成
func (l *LMAXLedger) Withdraw(ctx context.Context, accountNumber string, amount domain.Amount) (bool, domain.Amount, error) {
	if err := amount.Validate(); err != nil {
		return false, 0, err
	}
	var (
		ok      bool
		balance domain.Amount
		err     error
	)
	if postErr := l.post(ctx, func(b *book) { ok, balance, err = b.withdraw(accountNumber, amount) }); postErr != nil {
		return false, 0, postErr
	}
	return ok, balance, err
}

// UpdatePIN 更新 PIN
func (l *LMAXLedger) UpdatePIN(ctx context.Context, accountNumber string, pinHash string) error {
	var err error
	if postErr := l.post(ctx, func(b *book) { err = b.updatePIN(accountNumber, pinHash) }); postErr != nil {
		return postErr
	}
	return err
}

// CreateAccount 建立帳戶
func (l *LMAXLedger) CreateAccount(ctx context.Context, account *domain.Account) error {
	var err error
	if postErr := l.post(ctx, func(b *book) { err = b.create(account) }); postErr != nil {
		return postErr
	}
	return err
}

// History 查詢異動紀錄，新的在前
func (l *LMAXLedger) History(ctx context.Context, accountNumber string, query domain.HistoryQuery) ([]domain.Entry, error) {
	var entries []domain.Entry
	if err := l.post(ctx, func(b *book) { entries = b.entries(accountNumber, query) }); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
