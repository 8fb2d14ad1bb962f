package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	grpc_adapter "github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

const menuText = `
1) Balance
2) Deposit
3) Withdraw
4) Change PIN
5) History
6) Export history
0) Exit
`

// menu 互動式終端介面
type menu struct {
	client  *grpc_adapter.TellerClient
	in      io.Reader
	out     io.Writer
	export  string
	timeout time.Duration

	scanner *bufio.Scanner
	eof     bool
}

func (m *menu) run(account, pin string) error {
	m.scanner = bufio.NewScanner(m.in)

	for {
		if account == "" {
			account = m.prompt("Account number: ")
		}
		if pin == "" {
			pin = m.prompt("PIN: ")
		}
		if m.eof {
			return m.scanner.Err()
		}

		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		err := m.client.Login(ctx, account, pin)
		cancel()
		if err == nil {
			break
		}
		fmt.Fprintln(m.out, describe(err))
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return nil
		}
		account, pin = "", ""
	}
	fmt.Fprintf(m.out, "Welcome, %s.\n", account)

	for {
		fmt.Fprint(m.out, menuText)
		choice := m.prompt("> ")
		var err error
		switch choice {
		case "1":
			err = m.call(func(ctx context.Context) error {
				balance, err := m.client.GetBalance(ctx)
				if err == nil {
					fmt.Fprintf(m.out, "Balance: %s\n", balance)
				}
				return err
			})
		case "2":
			amount := m.prompt("Amount: ")
			err = m.call(func(ctx context.Context) error {
				balance, err := m.client.Deposit(ctx, amount)
				if err == nil {
					fmt.Fprintf(m.out, "Deposited %s. Balance: %s\n", amount, balance)
				}
				return err
			})
		case "3":
			amount := m.prompt("Amount: ")
			err = m.call(func(ctx context.Context) error {
				resp, err := m.client.Withdraw(ctx, amount)
				if err != nil {
					return err
				}
				if !resp.Success {
					fmt.Fprintf(m.out, "Insufficient balance. Balance: %s\n", resp.Balance)
					return nil
				}
				fmt.Fprintf(m.out, "Withdrew %s. Balance: %s\n", amount, resp.Balance)
				return nil
			})
		case "4":
			newPIN := m.prompt("New PIN: ")
			confirm := m.prompt("Confirm PIN: ")
			if err = domain.ValidatePINChange(newPIN, confirm); err != nil {
				break
			}
			err = m.call(func(ctx context.Context) error {
				if err := m.client.ChangePIN(ctx, newPIN, confirm); err != nil {
					return err
				}
				fmt.Fprintln(m.out, "PIN changed.")
				return nil
			})
		case "5", "6":
			kind := m.prompt("Filter (deposit/withdraw, empty for all): ")
			export := choice == "6"
			err = m.call(func(ctx context.Context) error {
				entries, err := fetchHistory(ctx, m.client, kind, 0)
				if err != nil {
					return err
				}
				if export {
					return exportHistory(m.out, m.export, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(m.out, "No transactions.")
				}
				for _, e := range entries {
					fmt.Fprintln(m.out, e.Line())
				}
				return nil
			})
		case "":
			if m.eof {
				return m.scanner.Err()
			}
		case "0":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
		if err != nil {
			fmt.Fprintln(m.out, describe(err))
			if errors.Is(err, domain.ErrInvalidSession) {
				return nil
			}
		}
	}
}

func (m *menu) call(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return fn(ctx)
}

func (m *menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	if !m.scanner.Scan() {
		m.eof = true
		return ""
	}
	return strings.TrimSpace(m.scanner.Text())
}
