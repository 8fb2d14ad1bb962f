package wal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// FileModePrivate rw------- 紀錄內含 PIN hash，只給擁有者讀寫
const FileModePrivate fs.FileMode = 0600

// WAL 一行一筆 JSON 的 append-only 日誌
type WAL struct {
	file *os.File
	mu   sync.Mutex
}

// NewWAL 開啟或建立一個 WAL 檔案
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func NewWAL(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, fmt.Errorf("open wal %s: %w", path, err)
	}
	return &WAL{file: file}, nil
}

// Write 寫入一筆資料並刷入硬碟，回傳 nil 才代表已持久化
func (w *WAL) Write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	// 單次 write，避免其他 goroutine 的紀錄穿插在同一行
	if _, err := w.file.Write(data); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close 關閉檔案
func (w *WAL) Close() error {
	return w.file.Close()
}

// ReadAll 依序讀取所有紀錄
// callback 接收每一筆的原始 JSON，避免一次將所有資料載入記憶體
//
// 寫到一半就當機留下的殘缺尾端 (最後一筆不完整) 會被截掉，
// 之前的紀錄照常回放；檔案中間的損毀仍視為錯誤
func (w *WAL) ReadAll(callback func(jsonRaw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(w.file)
	var good int64
	for {
		var raw json.RawMessage
		err := decoder.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return w.truncate(good)
		}
		if err != nil {
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
		good = decoder.InputOffset()
	}
}

// truncate 截掉 offset 之後的殘缺紀錄 (呼叫端需持有鎖)
func (w *WAL) truncate(offset int64) error {
	slog.Warn("wal: dropping torn tail record", "file", w.file.Name(), "offset", offset)
	if err := w.file.Truncate(offset); err != nil {
		return fmt.Errorf("truncate wal: %w", err)
	}
	if offset > 0 {
		// InputOffset 停在上一筆的 '}'，補回換行
		if _, err := w.file.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("truncate wal: %w", err)
		}
	}
	return nil
}
