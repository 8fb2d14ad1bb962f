package textfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the export\n"), 0o644))

	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	entries := []domain.Entry{domain.NewEntry("1001", domain.EntryKindDeposit, 5000, 15000, now)}
	require.NoError(t, Export(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18 09:30:00 | DEPOSIT | 50.00 | balance 150.00\n", string(data))
}

func TestExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, Export(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
