package main

import (
	"fmt"
	"io"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/textfile"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

// exportHistory 沒有紀錄時不建立檔案，只提示使用者
func exportHistory(out io.Writer, path string, entries []domain.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No transactions to export.")
		return nil
	}
	if err := textfile.Export(path, entries); err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d entries to %s\n", len(entries), path)
	return nil
}
