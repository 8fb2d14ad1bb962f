package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	grpc_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

// stress 同時送出 total 筆提款，最後檢查成功筆數與餘額是否吻合 (不可透支)
func stress(client *grpc_adapter.TellerClient, amountStr string, total int, concurrency int) error {
	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return err
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	before, err := client.GetBalance(ctx)
	if err != nil {
		return err
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		rejected  atomic.Int64
		failed    atomic.Int64
	)
	wg.Add(total)
	sem := make(chan struct{}, concurrency)
	startTime := time.Now()

	for i := 0; i < total; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := client.Withdraw(ctx, amountStr)
			switch {
			case err != nil:
				failed.Add(1)
				if idx%1000 == 0 {
					slog.Warn("withdraw failed", "idx", idx, "error", err)
				}
			case resp.Success:
				succeeded.Add(1)
			default:
				rejected.Add(1)
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(startTime)

	after, err := client.GetBalance(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Completed %d withdrawals of %s in %v\n", total, amount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(total)/elapsed.Seconds())
	fmt.Printf("succeeded=%d rejected=%d failed=%d\n", succeeded.Load(), rejected.Load(), failed.Load())
	fmt.Printf("balance %s -> %s\n", before, after)

	start, err := domain.ParseBalance(before)
	if err != nil {
		return err
	}
	end, err := domain.ParseBalance(after)
	if err != nil {
		return err
	}
	// 只在沒有其他客戶端同時操作時成立
	if expected := start - domain.Amount(succeeded.Load())*amount; expected != end {
		return fmt.Errorf("balance mismatch: expected %s, got %s", expected, end)
	}
	return nil
}
