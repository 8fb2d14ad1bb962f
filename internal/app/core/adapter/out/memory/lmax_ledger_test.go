package memory

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/pkg/wal"
)

func startLMAX(t *testing.T, accounts map[string]*domain.Account, w *wal.WAL) *LMAXLedger {
	t.Helper()
	ledger, err := NewLMAXLedger(accounts, w)
	require.NoError(t, err)
	ledger.Start(context.Background())
	t.Cleanup(ledger.Stop)
	return ledger
}

func TestLMAXLedgerScenario(t *testing.T) {
	ctx := context.Background()
	ledger := startLMAX(t, map[string]*domain.Account{
		"1001": domain.NewAccount("1001", "1234", 10000),
	}, nil)

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

	_, err = ledger.Deposit(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, _, err = ledger.Withdraw(ctx, "1001", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = ledger.LoadPIN(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	entries, err := ledger.History(ctx, "1001", domain.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EntryKindWithdraw, entries[0].Kind)
	assert.Equal(t, domain.Amount(0), entries[0].BalanceAfter)
	assert.Equal(t, domain.EntryKindDeposit, entries[1].Kind)
}

func TestLMAXLedgerConcurrentWithdraw(t *testing.T) {
	const (
		workers = 50
		amount  = domain.Amount(100)
	)
	ctx := context.Background()
	start := workers*amount - 1
	ledger := startLMAX(t, map[string]*domain.Account{
		"1001": domain.NewAccount("1001", "1234", start),
	}, nil)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ok, _, err := ledger.Withdraw(ctx, "1001", amount)
			assert.NoError(t, err)
			if ok {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers-1), successes.Load())
	balance, err := ledger.GetAccountBalance(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(amount-1), balance)

	entries, err := ledger.History(ctx, "1001", domain.HistoryQuery{Limit: workers})
	require.NoError(t, err)
	assert.Len(t, entries, workers-1)
}

func TestLMAXLedgerRecoversFromWAL(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := wal.NewWAL(path)
	require.NoError(t, err)
	ledger := startLMAX(t, nil, w)

	require.NoError(t, ledger.CreateAccount(ctx, domain.NewAccount("1001", "hash-1", 10000)))
	assert.ErrorIs(t, ledger.CreateAccount(ctx, domain.NewAccount("1001", "x", 0)), domain.ErrAccountAlreadyExists)
	_, err = ledger.Deposit(ctx, "1001", 2500)
	require.NoError(t, err)
	_, _, err = ledger.Withdraw(ctx, "1001", 500)
	require.NoError(t, err)
	require.NoError(t, ledger.UpdatePIN(ctx, "1001", "hash-2"))
	before, err := ledger.History(ctx, "1001", domain.HistoryQuery{})
	require.NoError(t, err)
	ledger.Stop()
	require.NoError(t, w.Close())

	// MutexLedger 與 LMAXLedger 共用同一種 WAL 格式
	w, err = wal.NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	recovered, err := NewMutexLedger(nil, w)
	require.NoError(t, err)

	balance, err := recovered.GetAccountBalance(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(12000), balance)
	pin, err := recovered.LoadPIN(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", pin)
	after, err := recovered.History(ctx, "1001", domain.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLMAXLedgerStopped(t *testing.T) {
	ctx := context.Background()
	ledger, err := NewLMAXLedger(map[string]*domain.Account{
		"1001": domain.NewAccount("1001", "1234", 100),
	}, nil)
	require.NoError(t, err)

	ledger.Stop() // 尚未啟動，直接返回

	ledger.Start(ctx)
	balance, err := ledger.GetAccountBalance(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(100), balance)

	ledger.Stop()
	_, _, err = ledger.Withdraw(ctx, "1001", 1)
	assert.ErrorIs(t, err, ErrLedgerStopped)
	_, err = ledger.History(ctx, "1001", domain.HistoryQuery{})
	assert.ErrorIs(t, err, ErrLedgerStopped)

	// 取消的 ctx 不會把請求放上已停止的輸送帶
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ledger.LoadPIN(canceled, "1001")
	assert.Error(t, err)
}
