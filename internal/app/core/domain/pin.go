package domain

// MinPINLength PIN 最少位數
const MinPINLength = 4

// ValidatePIN 檢查 PIN 是否為至少 4 碼的純數字
func ValidatePIN(pin string) error {
	if len(pin) < MinPINLength {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

// ValidatePINChange 呼叫端在送出變更前的檢查：格式正確且與確認值一致
func ValidatePINChange(pin, confirm string) error {
	if pin != confirm {
		return ErrPINMismatch
	}
	return ValidatePIN(pin)
}
