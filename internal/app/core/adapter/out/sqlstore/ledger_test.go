package sqlstore

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/pkg/database"
)

func newTestLedger(t *testing.T, opts ...Option) *SQLLedger {
	t.Helper()
	return openLedger(t, database.Config{
		Driver:   database.DriverSQLite,
		DSN:      "file:" + filepath.Join(t.TempDir(), "atm.db") + "?_busy_timeout=5000",
		LogLevel: "silent",
	}, opts...)
}

// newPooledLedger 多條連線共用同一個 SQLite 檔案
func newPooledLedger(t *testing.T, conns int, opts ...Option) *SQLLedger {
	t.Helper()
	ledger := openLedger(t, database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file:" + filepath.Join(t.TempDir(), "atm.db") + "?_busy_timeout=10000&_txlock=immediate",
		MaxOpenConns: conns,
		MaxIdleConns: conns,
		LogLevel:     "silent",
	}, opts...)
	sqlDB, err := ledger.client.DB().DB()
	require.NoError(t, err)
	require.Equal(t, conns, sqlDB.Stats().MaxOpenConnections)
	return ledger
}

func openLedger(t *testing.T, cfg database.Config, opts ...Option) *SQLLedger {
	t.Helper()
	client, err := database.NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ledger := NewSQLLedger(client, opts...)
	require.NoError(t, ledger.Migrate(context.Background()))
	require.NoError(t, ledger.CreateAccount(context.Background(), domain.NewAccount("1001", "1234", 10000)))
	return ledger
}

// concurrentWithdraw 同時送出 workers 筆提款，回傳成功筆數
func concurrentWithdraw(t *testing.T, workers int, withdraw func() (bool, error)) int64 {
	t.Helper()
	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ok, err := withdraw()
			assert.NoError(t, err)
			if ok {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()
	return successes.Load()
}

func strategies() []WithdrawStrategy {
	return []WithdrawStrategy{WithdrawCAS, WithdrawLock}
}

func TestCreateAccountTwice(t *testing.T) {
	ledger := newTestLedger(t)
	err := ledger.CreateAccount(context.Background(), domain.NewAccount("1001", "9999", 0))
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	pin, err := ledger.LoadPIN(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
}

func TestLoadPINUnknownAccount(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.LoadPIN(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDeposit(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	balance, err := ledger.Deposit(ctx, "1001", 5000)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(15000), balance)

	got, err := ledger.GetAccountBalance(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(15000), got)

	_, err = ledger.Deposit(ctx, "nope", 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// 100.00 -> 存 50.00 -> 提 200.00 失敗 -> 提 150.00 成功 -> 提 0.01 失敗
func TestWithdrawScenario(t *testing.T) {
	for _, strategy := range strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			ledger := newTestLedger(t, WithWithdrawStrategy(strategy))
			ctx := context.Background()

			balance, err := ledger.Deposit(ctx, "1001", 5000)
			require.NoError(t, err)
			assert.Equal(t, domain.Amount(15000), balance)

			ok, balance, err := ledger.Withdraw(ctx, "1001", 20000)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, domain.Amount(15000), balance)

			ok, balance, err = ledger.Withdraw(ctx, "1001", 15000)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, domain.Amount(0), balance)

			ok, balance, err = ledger.Withdraw(ctx, "1001", 1)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, domain.Amount(0), balance)

			_, _, err = ledger.Withdraw(ctx, "nope", 1)
			assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		})
	}
}

func TestConcurrentWithdrawNeverOverdraws(t *testing.T) {
	const (
		workers = 20
		conns   = 8
		amount  = domain.Amount(500)
	)
	for _, strategy := range strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			ledger := newPooledLedger(t, conns, WithWithdrawStrategy(strategy))
			ctx := context.Background()
			start := workers*amount - 1
			require.NoError(t, ledger.CreateAccount(ctx, domain.NewAccount("2002", "0000", start)))

			successes := concurrentWithdraw(t, workers, func() (bool, error) {
				ok, _, err := ledger.Withdraw(ctx, "2002", amount)
				return ok, err
			})

			assert.Equal(t, int64(workers-1), successes)
			balance, err := ledger.GetAccountBalance(ctx, "2002")
			require.NoError(t, err)
			assert.Equal(t, start-domain.Amount(successes)*amount, balance)
			assert.GreaterOrEqual(t, int64(balance), int64(0))

			entries, err := ledger.History(ctx, "2002", domain.HistoryQuery{Limit: 100})
			require.NoError(t, err)
			assert.Len(t, entries, int(successes))
		})
	}
}

// 沒有條件更新也沒有鎖的讀取-檢查-寫入，同樣的檢查必須抓得到超扣
func TestUnguardedWithdrawOverdraws(t *testing.T) {
	const (
		workers = 20
		conns   = 8
		amount  = int64(500)
	)
	ledger := newPooledLedger(t, conns)
	ctx := context.Background()
	start := int64(workers)*amount - 1
	require.NoError(t, ledger.CreateAccount(ctx, domain.NewAccount("2002", "0000", domain.Amount(start))))
	db := ledger.client.DB().WithContext(ctx)

	// 所有人都讀完餘額後才開始扣款，重現兩個請求交錯的情況
	var read sync.WaitGroup
	read.Add(workers)
	successes := concurrentWithdraw(t, workers, func() (bool, error) {
		balance, err := readBalance(db, "2002")
		read.Done()
		if err != nil {
			return false, err
		}
		read.Wait()
		if balance < amount {
			return false, nil
		}
		err = db.Model(&sqlAccount{}).
			Where("account_number = ?", "2002").
			Update("balance", balance-amount).Error
		return err == nil, err
	})

	assert.Greater(t, successes, int64(workers-1))
	balance, err := ledger.GetAccountBalance(ctx, "2002")
	require.NoError(t, err)
	assert.NotEqual(t, domain.Amount(start-successes*amount), balance)
}

func TestWithdrawRollsBackWhenEntryFails(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, ledger.client.DB().Migrator().DropTable(&sqlEntry{}))

	_, _, err := ledger.Withdraw(ctx, "1001", 100)
	require.Error(t, err)

	balance, err := ledger.GetAccountBalance(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(10000), balance)
}

func TestUpdatePIN(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.UpdatePIN(ctx, "1001", "5678"))
	pin, err := ledger.LoadPIN(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "5678", pin)

	// 相同值再次更新仍視為成功
	require.NoError(t, ledger.UpdatePIN(ctx, "1001", "5678"))
	assert.ErrorIs(t, ledger.UpdatePIN(ctx, "nope", "5678"), domain.ErrAccountNotFound)
}

func TestHistory(t *testing.T) {
	clock := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	ledger := newTestLedger(t, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
	ctx := context.Background()

	_, err := ledger.Deposit(ctx, "1001", 5000)
	require.NoError(t, err)
	_, _, err = ledger.Withdraw(ctx, "1001", 2000)
	require.NoError(t, err)
	_, _, err = ledger.Withdraw(ctx, "1001", 999999) // 餘額不足不留紀錄
	require.NoError(t, err)
	_, err = ledger.Deposit(ctx, "1001", 100)
	require.NoError(t, err)

	entries, err := ledger.History(ctx, "1001", domain.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.EntryKindDeposit, entries[0].Kind)
	assert.Equal(t, domain.Amount(100), entries[0].Amount)
	assert.Equal(t, domain.Amount(13100), entries[0].BalanceAfter)
	assert.Equal(t, domain.EntryKindWithdraw, entries[1].Kind)
	assert.Equal(t, domain.Amount(13000), entries[1].BalanceAfter)
	assert.Greater(t, entries[0].Sequence, entries[1].Sequence)
	assert.Greater(t, entries[0].CreatedAt, entries[2].CreatedAt)

	withdrawals, err := ledger.History(ctx, "1001", domain.HistoryQuery{Kind: domain.EntryKindWithdraw})
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, domain.Amount(2000), withdrawals[0].Amount)

	limited, err := ledger.History(ctx, "1001", domain.HistoryQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := ledger.History(ctx, "nope", domain.HistoryQuery{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestParseWithdrawStrategy(t *testing.T) {
	s, err := ParseWithdrawStrategy("")
	require.NoError(t, err)
	assert.Equal(t, WithdrawCAS, s)

	s, err = ParseWithdrawStrategy("lock")
	require.NoError(t, err)
	assert.Equal(t, WithdrawLock, s)

	_, err = ParseWithdrawStrategy("yolo")
	assert.Error(t, err)
}
