package grpc

import (
	"github.com/google/uuid"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	pb "github.com/JoeShih716/go-atm-ledger/proto/atm/v1"
)

func toPBEntries(entries []domain.Entry) []*pb.Entry {
	out := make([]*pb.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &pb.Entry{
			Sequence:     e.Sequence,
			RefId:        e.RefID.String(),
			Kind:         e.Kind.String(),
			Amount:       e.Amount.String(),
			BalanceAfter: e.BalanceAfter.String(),
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}

// ToEntries 把 pb.Entry 轉回 domain.Entry (匯出檔案用)
func ToEntries(entries []*pb.Entry) ([]domain.Entry, error) {
	out := make([]domain.Entry, 0, len(entries))
	for _, m := range entries {
		kind, err := domain.ParseEntryKind(m.GetKind())
		if err != nil {
			return nil, err
		}
		amount, err := domain.ParseAmount(m.GetAmount())
		if err != nil {
			return nil, err
		}
		balance, err := domain.ParseBalance(m.GetBalanceAfter())
		if err != nil {
			return nil, err
		}
		refID, err := uuid.Parse(m.GetRefId())
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Entry{
			Sequence:     m.GetSequence(),
			RefID:        refID,
			Kind:         kind,
			Amount:       amount,
			BalanceAfter: balance,
			CreatedAt:    m.GetCreatedAt(),
		})
	}
	return out, nil
}
