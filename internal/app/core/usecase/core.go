package usecase

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

var errAccountNumberRequired = errors.New("account number is required")

// DefaultOpTimeout 每次存取儲存層的預設逾時
const DefaultOpTimeout = 5 * time.Second

// CoreUseCase 是核心業務邏輯層
//
// 每個操作都是無狀態的，唯一跨呼叫的狀態是呼叫端持有的 domain.Session。
// 儲存層的原始錯誤只會寫進 log，回傳給呼叫端的一律是 domain 的錯誤。
type CoreUseCase struct {
	ledger     Ledger
	hasher     PINHasher
	logger     *slog.Logger
	opTimeout  time.Duration
	sessionTTL time.Duration
	lockout    *lockout
	now        func() time.Time
	telemetry  *telemetry
}

// Option 設定 CoreUseCase
type Option func(*CoreUseCase)

// WithLogger 指定 logger，預設為 slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *CoreUseCase) {
		c.logger = logger
	}
}

// WithOpTimeout 指定每次存取儲存層的逾時
func WithOpTimeout(d time.Duration) Option {
	return func(c *CoreUseCase) {
		c.opTimeout = d
	}
}

// WithSessionTTL 指定 Login 發出的 Session 有效時間，0 代表不過期
func WithSessionTTL(d time.Duration) Option {
	return func(c *CoreUseCase) {
		c.sessionTTL = d
	}
}

// WithLockout 連續失敗 maxFailures 次後鎖定 window 時間，maxFailures <= 0 代表停用
func WithLockout(maxFailures int, window time.Duration) Option {
	return func(c *CoreUseCase) {
		c.lockout = newLockout(maxFailures, window)
	}
}

// WithClock 指定時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(c *CoreUseCase) {
		c.now = now
	}
}

func NewCoreUseCase(ledger Ledger, hasher PINHasher, opts ...Option) *CoreUseCase {
	c := &CoreUseCase{
		ledger:    ledger,
		hasher:    hasher,
		logger:    slog.Default(),
		opTimeout: DefaultOpTimeout,
		now:       time.Now,
		telemetry: newTelemetry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate 驗證帳號與 PIN
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	pin: 使用者輸入的 PIN
//
// 回傳:
//
//	bool: 帳號存在且 PIN 正確時為 true；帳號不存在與 PIN 錯誤都是 false
//	error: domain.ErrAccountLocked 或 domain.ErrStoreUnavailable
func (c *CoreUseCase) Authenticate(ctx context.Context, accountNumber string, pin string) (ok bool, err error) {
	ctx, op := c.telemetry.start(ctx, "Authenticate")
	defer func() { op.end(ctx, outcome(ok, err), err) }()

	if accountNumber == "" || pin == "" {
		return false, nil
	}
	now := c.now()
	if c.lockout.locked(accountNumber, now) {
		c.logger.WarnContext(ctx, "login refused, account locked", "account", accountNumber)
		return false, domain.ErrAccountLocked
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	stored, err := c.ledger.LoadPIN(ctx, accountNumber)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		ok = false
	case err != nil:
		c.logger.ErrorContext(ctx, "authenticate failed", "account", accountNumber, "error", err)
		return false, domain.ErrStoreUnavailable
	default:
		ok = c.hasher.Compare(stored, pin)
	}

	if ok {
		c.lockout.reset(accountNumber)
		return true, nil
	}
	if c.lockout.fail(accountNumber, now) {
		c.logger.WarnContext(ctx, "too many failed logins, account locked", "account", accountNumber)
	}
	return false, nil
}

// Login 驗證成功後回傳 Session，之後的操作都要帶著它
func (c *CoreUseCase) Login(ctx context.Context, accountNumber string, pin string) (domain.Session, error) {
	ok, err := c.Authenticate(ctx, accountNumber, pin)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	now := c.now()
	sess := domain.Session{
		AccountNumber: accountNumber,
		IssuedAt:      now,
	}
	if c.sessionTTL > 0 {
		sess.ExpiresAt = now.Add(c.sessionTTL)
	}
	c.logger.InfoContext(ctx, "login", "account", accountNumber)
	return sess, nil
}

// GetBalance 取得帳戶餘額
func (c *CoreUseCase) GetBalance(ctx context.Context, sess domain.Session) (balance domain.Amount, err error) {
	ctx, op := c.telemetry.start(ctx, "GetBalance")
	defer func() { op.end(ctx, outcome(true, err), err) }()

	if err := sess.Valid(c.now()); err != nil {
		return 0, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err = c.ledger.GetAccountBalance(ctx, sess.AccountNumber)
	if err != nil {
		return 0, c.storeFailure(ctx, "GetBalance", sess.AccountNumber, err)
	}
	return balance, nil
}

// Deposit 存款，回傳新餘額
func (c *CoreUseCase) Deposit(ctx context.Context, sess domain.Session, amount domain.Amount) (balance domain.Amount, err error) {
	ctx, op := c.telemetry.start(ctx, "Deposit")
	defer func() { op.end(ctx, outcome(true, err), err) }()

	if err := sess.Valid(c.now()); err != nil {
		return 0, err
	}
	if err := amount.Validate(); err != nil {
		return 0, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err = c.ledger.Deposit(ctx, sess.AccountNumber, amount)
	if err != nil {
		return 0, c.storeFailure(ctx, "Deposit", sess.AccountNumber, err)
	}
	c.logger.InfoContext(ctx, "deposit", "account", sess.AccountNumber, "amount", amount.String(), "balance", balance.String())
	return balance, nil
}

// Withdraw 提款
//
// 回傳:
//
//	bool: 是否成功；餘額不足回傳 false 與未變動的餘額，不是錯誤
//	domain.Amount: 交易後餘額
//	error: domain.ErrInvalidAmount / ErrAccountNotFound / ErrStore / ErrStoreUnavailable
func (c *CoreUseCase) Withdraw(ctx context.Context, sess domain.Session, amount domain.Amount) (ok bool, balance domain.Amount, err error) {
	ctx, op := c.telemetry.start(ctx, "Withdraw")
	defer func() { op.end(ctx, outcome(ok, err), err) }()

	if err := sess.Valid(c.now()); err != nil {
		return false, 0, err
	}
	if err := amount.Validate(); err != nil {
		return false, 0, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ok, balance, err = c.ledger.Withdraw(ctx, sess.AccountNumber, amount)
	if err != nil {
		return false, 0, c.storeFailure(ctx, "Withdraw", sess.AccountNumber, err)
	}
	if !ok {
		c.logger.InfoContext(ctx, "withdraw refused, insufficient balance", "account", sess.AccountNumber, "amount", amount.String())
		return false, balance, nil
	}
	c.logger.InfoContext(ctx, "withdraw", "account", sess.AccountNumber, "amount", amount.String(), "balance", balance.String())
	return true, balance, nil
}

// ChangePIN 變更 PIN
// 確認值比對由呼叫端處理 (domain.ValidatePINChange)，這裡只檢查格式
func (c *CoreUseCase) ChangePIN(ctx context.Context, sess domain.Session, newPIN string) (err error) {
	ctx, op := c.telemetry.start(ctx, "ChangePIN")
	defer func() { op.end(ctx, outcome(true, err), err) }()

	if err := sess.Valid(c.now()); err != nil {
		return err
	}
	if err := domain.ValidatePIN(newPIN); err != nil {
		return err
	}
	hash, err := c.hasher.Hash(newPIN)
	if err != nil {
		c.logger.ErrorContext(ctx, "hash pin failed", "account", sess.AccountNumber, "error", err)
		return domain.ErrStore
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.ledger.UpdatePIN(ctx, sess.AccountNumber, hash); err != nil {
		return c.storeFailure(ctx, "ChangePIN", sess.AccountNumber, err)
	}
	c.logger.InfoContext(ctx, "pin changed", "account", sess.AccountNumber)
	return nil
}

// GetHistory 取得異動紀錄，新的在前
func (c *CoreUseCase) GetHistory(ctx context.Context, sess domain.Session, query domain.HistoryQuery) (entries []domain.Entry, err error) {
	ctx, op := c.telemetry.start(ctx, "GetHistory")
	defer func() { op.end(ctx, outcome(true, err), err) }()

	if err := sess.Valid(c.now()); err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	entries, err = c.ledger.History(ctx, sess.AccountNumber, query)
	if err != nil {
		return nil, c.storeFailure(ctx, "GetHistory", sess.AccountNumber, err)
	}
	return entries, nil
}

// ExportHistory 將異動紀錄逐行寫入 w，回傳筆數
func (c *CoreUseCase) ExportHistory(ctx context.Context, sess domain.Session, query domain.HistoryQuery, w io.Writer) (int, error) {
	entries, err := c.GetHistory(ctx, sess, query)
	if err != nil {
		return 0, err
	}
	if err := domain.WriteEntries(w, entries); err != nil {
		c.logger.ErrorContext(ctx, "export history failed", "account", sess.AccountNumber, "error", err)
		return 0, err
	}
	return len(entries), nil
}

// Provision 開立帳戶 (初始資料)，PIN 會先經過 PINHasher
func (c *CoreUseCase) Provision(ctx context.Context, accountNumber string, pin string, balance domain.Amount) error {
	if accountNumber == "" {
		return errAccountNumberRequired
	}
	if balance < 0 {
		return domain.ErrInvalidAmount
	}
	if err := domain.ValidatePIN(pin); err != nil {
		return err
	}
	hash, err := c.hasher.Hash(pin)
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.ledger.CreateAccount(ctx, domain.NewAccount(accountNumber, hash, balance))
	if errors.Is(err, domain.ErrAccountAlreadyExists) {
		return err
	}
	if err != nil {
		return c.storeFailure(ctx, "Provision", accountNumber, err)
	}
	c.logger.InfoContext(ctx, "account provisioned", "account", accountNumber, "balance", balance.String())
	return nil
}

func (c *CoreUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// storeFailure 把儲存層錯誤轉成 domain 錯誤，原因只寫進 log
func (c *CoreUseCase) storeFailure(ctx context.Context, op string, accountNumber string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		// 已通過驗證卻找不到帳戶，代表資料不一致
		c.logger.WarnContext(ctx, "account missing after authentication", "op", op, "account", accountNumber)
		return domain.ErrAccountNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return domain.ErrInvalidAmount
	case isUnavailable(err):
		c.logger.ErrorContext(ctx, "store unavailable", "op", op, "account", accountNumber, "error", err)
		return domain.ErrStoreUnavailable
	default:
		c.logger.ErrorContext(ctx, "store operation failed", "op", op, "account", accountNumber, "error", err)
		return domain.ErrStore
	}
}

// isUnavailable 連線層級的錯誤；逾時不算，逾時歸類為 ErrStore
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return !netErr.Timeout()
	}
	return false
}

func outcome(ok bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case !ok:
		return "rejected"
	default:
		return "ok"
	}
}
