package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

func TestExportHistoryEmpty(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "history.txt")

	require.NoError(t, exportHistory(&out, path, nil))
	assert.Equal(t, "No transactions to export.\n", out.String())
	assert.NoFileExists(t, path)
}

func TestExportHistoryWritesFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "history.txt")
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	entries := []domain.Entry{domain.NewEntry("1001", domain.EntryKindWithdraw, 2000, 8000, now)}

	require.NoError(t, exportHistory(&out, path, entries))
	assert.Equal(t, "Exported 1 entries to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18 09:30:00 | WITHDRAW | 20.00 | balance 80.00\n", string(data))
}
