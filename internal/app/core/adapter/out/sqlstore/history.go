package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/pkg/database"
)

// entryRow 報表查詢用的 ledger_entries 欄位對應
type entryRow struct {
	ID            uint64 `db:"id"`
	RefID         string `db:"ref_id"`
	AccountNumber string `db:"account_number"`
	Kind          uint8  `db:"kind"`
	Amount        int64  `db:"amount"`
	BalanceAfter  int64  `db:"balance_after"`
	CreatedAt     int64  `db:"created_at"`
}

// History 查詢帳戶異動紀錄，依序號由新到舊
// 唯讀查詢走 squirrel + sqlx，與 GORM 共用同一個連線池
func (ledger *SQLLedger) History(ctx context.Context, accountNumber string, query domain.HistoryQuery) ([]domain.Entry, error) {
	builder := sq.Select("id", "ref_id", "account_number", "kind", "amount", "balance_after", "created_at").
		From("ledger_entries").
		Where(sq.Eq{"account_number": accountNumber}).
		OrderBy("id DESC").
		Limit(uint64(query.EffectiveLimit()))
	if query.Kind != 0 {
		builder = builder.Where(sq.Eq{"kind": uint8(query.Kind)})
	}
	if ledger.client.Driver() == database.DriverPostgres {
		builder = builder.PlaceholderFormat(sq.Dollar)
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	var rows []entryRow
	if err := ledger.client.SQLX().SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		refID, err := uuid.Parse(row.RefID)
		if err != nil {
			return nil, fmt.Errorf("ledger entry %d has invalid ref_id: %w", row.ID, err)
		}
		entries = append(entries, domain.Entry{
			Sequence:      row.ID,
			RefID:         refID,
			AccountNumber: row.AccountNumber,
			Kind:          domain.EntryKind(row.Kind),
			Amount:        domain.Amount(row.Amount),
			BalanceAfter:  domain.Amount(row.BalanceAfter),
			CreatedAt:     row.CreatedAt,
		})
	}
	return entries, nil
}
