package textfile

import (
	"fmt"
	"os"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

// DefaultPath 匯出的固定相對路徑
const DefaultPath = "transaction_history.txt"

// Export 將紀錄逐行寫入 path，已存在的檔案會被覆蓋
func Export(path string, entries []domain.Entry) error {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := domain.WriteEntries(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	return f.Close()
}
