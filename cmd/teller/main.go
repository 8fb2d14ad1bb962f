package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	grpc_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/textfile"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/pkg/grpc"
)

const usage = `usage: teller [flags] [command]

commands:
  menu                       interactive terminal (default)
  balance
  deposit <amount>
  withdraw <amount>
  pin <new-pin> <confirm>
  history [deposit|withdraw]
  export [deposit|withdraw]  write history to -out
  stress <amount>            -n withdrawals with -c concurrency

flags:
`

func main() {
	addr := flag.String("addr", "localhost:50051", "teller service address")
	account := flag.String("account", "", "account number")
	pin := flag.String("pin", "", "pin (prompted in menu mode when empty)")
	out := flag.String("out", textfile.DefaultPath, "export file path")
	limit := flag.Int("limit", 0, "history entries to fetch (0 = server default)")
	timeout := flag.Duration("timeout", 10*time.Second, "per-call timeout")
	total := flag.Int("n", 1000, "stress: total withdrawals")
	concurrency := flag.Int("c", 100, "stress: concurrent workers")
	verbose := flag.Bool("v", false, "log every rpc to stderr")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(*verbose)}))
	slog.SetDefault(logger)

	pool := grpc.NewPool(grpc.WithInterceptor(grpc_adapter.ClientLoggingInterceptor(logger)))
	defer pool.Close()
	conn, err := pool.GetConnection(*addr)
	if err != nil {
		slog.Error("did not connect", "addr", *addr, "error", err)
		os.Exit(1)
	}
	client := grpc_adapter.NewTellerClient(conn)

	args := flag.Args()
	if len(args) == 0 || args[0] == "menu" {
		m := &menu{
			client:  client,
			in:      os.Stdin,
			out:     os.Stdout,
			export:  *out,
			timeout: *timeout,
		}
		if err := m.run(*account, *pin); err != nil {
			slog.Error("teller exited", "error", err)
			os.Exit(1)
		}
		return
	}

	if *account == "" || *pin == "" {
		fmt.Fprintln(os.Stderr, "-account and -pin are required")
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err = client.Login(ctx, *account, *pin)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}

	if err := runCommand(client, args, options{
		out:         *out,
		limit:       *limit,
		timeout:     *timeout,
		total:       *total,
		concurrency: *concurrency,
	}); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

type options struct {
	out         string
	limit       int
	timeout     time.Duration
	total       int
	concurrency int
}

var errUsage = errors.New("invalid arguments, see -h")

func runCommand(client *grpc_adapter.TellerClient, args []string, opt options) error {
	if args[0] == "stress" {
		if len(args) != 2 {
			return errUsage
		}
		return stress(client, args[1], opt.total, opt.concurrency)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
	defer cancel()

	switch args[0] {
	case "balance":
		balance, err := client.GetBalance(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Balance: %s\n", balance)
	case "deposit":
		if len(args) != 2 {
			return errUsage
		}
		balance, err := client.Deposit(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Deposited %s. Balance: %s\n", args[1], balance)
	case "withdraw":
		if len(args) != 2 {
			return errUsage
		}
		resp, err := client.Withdraw(ctx, args[1])
		if err != nil {
			return err
		}
		if !resp.Success {
			fmt.Printf("Insufficient balance. Balance: %s\n", resp.Balance)
			return nil
		}
		fmt.Printf("Withdrew %s. Balance: %s\n", args[1], resp.Balance)
	case "pin":
		if len(args) != 3 {
			return errUsage
		}
		if err := domain.ValidatePINChange(args[1], args[2]); err != nil {
			return err
		}
		if err := client.ChangePIN(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("PIN changed.")
	case "history", "export":
		kind := ""
		if len(args) > 1 {
			kind = args[1]
		}
		entries, err := fetchHistory(ctx, client, kind, opt.limit)
		if err != nil {
			return err
		}
		if args[0] == "export" {
			return exportHistory(os.Stdout, opt.out, entries)
		}
		if len(entries) == 0 {
			fmt.Println("No transactions.")
		}
		for _, e := range entries {
			fmt.Println(e.Line())
		}
	default:
		return errUsage
	}
	return nil
}

func fetchHistory(ctx context.Context, client *grpc_adapter.TellerClient, kind string, limit int) ([]domain.Entry, error) {
	msgs, err := client.GetHistory(ctx, kind, limit)
	if err != nil {
		return nil, err
	}
	return grpc_adapter.ToEntries(msgs)
}

// describe 把錯誤轉成給使用者看的訊息
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid account number or PIN."
	case errors.Is(err, domain.ErrAccountLocked):
		return "Too many failed attempts. Please try again later."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be positive with at most two decimal places."
	case errors.Is(err, domain.ErrInvalidPIN):
		return "PIN must be at least " + strconv.Itoa(domain.MinPINLength) + " digits."
	case errors.Is(err, domain.ErrPINMismatch):
		return "PIN confirmation does not match."
	case errors.Is(err, domain.ErrInvalidSession):
		return "Session expired. Please log in again."
	case errors.Is(err, domain.ErrStoreUnavailable):
		return grpc_adapter.MessageTryAgain
	case errors.Is(err, errUsage):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}
