package wal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Op     string `json:"op"`
	Amount int64  `json:"amount"`
}

func TestWriteAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := NewWAL(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(record{Op: "deposit", Amount: 100}))
	require.NoError(t, w.Write(record{Op: "withdraw", Amount: 40}))
	require.NoError(t, w.Close())

	// 重新開啟後仍能完整讀回，且可繼續附加
	w, err = NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Write(record{Op: "deposit", Amount: 1}))

	var got []record
	err = w.ReadAll(func(raw []byte) error {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []record{{"deposit", 100}, {"withdraw", 40}, {"deposit", 1}}, got)
}

func TestReadAllEmpty(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()

	calls := 0
	require.NoError(t, w.ReadAll(func([]byte) error { calls++; return nil }))
	assert.Zero(t, calls)
}

func TestReadAllDropsTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := NewWAL(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(record{Op: "deposit", Amount: 100}))
	require.NoError(t, w.Close())

	// 模擬寫到一半當機
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, FileModePrivate)
	require.NoError(t, err)
	_, err = f.WriteString(`{"op":"withdraw","amo`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w, err = NewWAL(path)
	require.NoError(t, err)
	defer w.Close()

	read := func() []record {
		var got []record
		require.NoError(t, w.ReadAll(func(raw []byte) error {
			var r record
			if err := json.Unmarshal(raw, &r); err != nil {
				return err
			}
			got = append(got, r)
			return nil
		}))
		return got
	}
	assert.Equal(t, []record{{"deposit", 100}}, read())

	require.NoError(t, w.Write(record{Op: "withdraw", Amount: 40}))
	assert.Equal(t, []record{{"deposit", 100}, {"withdraw", 40}}, read())
}

func TestReadAllCorruptMiddle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"op\":\"deposit\",\"amount\":1}\nnot-json\n{\"op\":\"deposit\",\"amount\":2}\n"), FileModePrivate))

	w, err := NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Error(t, w.ReadAll(func([]byte) error { return nil }))
}
