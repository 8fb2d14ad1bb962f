package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數且最多兩位小數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidCredentials 帳號或 PIN 錯誤
	ErrInvalidCredentials = errors.New("invalid account number or pin")

	// ErrInvalidPIN PIN 格式錯誤 (至少 4 碼、全數字)
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrPINMismatch 新 PIN 與確認 PIN 不一致 (呼叫端檢查)
	ErrPINMismatch = errors.New("pin confirmation does not match")

	// ErrAccountLocked 連續輸入錯誤 PIN 次數過多，暫時鎖定
	ErrAccountLocked = errors.New("account temporarily locked")

	// ErrInvalidSession Session 無效或已過期
	ErrInvalidSession = errors.New("invalid session")

	// ErrStoreUnavailable 無法連線到資料庫
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStore 資料庫操作或交易失敗 (包含逾時)
	ErrStore = errors.New("store error")
)
