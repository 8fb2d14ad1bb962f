package usecase

import (
	"sync"
	"time"
)

// pruneAbove 紀錄超過此數量時，fail 會順便清掉已過期的帳號
const pruneAbove = 1024

// lockout 記錄每個帳號在 window 內登入失敗的次數
// nil 代表停用，所有方法都可以安全呼叫
type lockout struct {
	mu          sync.Mutex
	maxFailures int
	window      time.Duration
	attempts    map[string]*attempt
	pruneAbove  int
}

// attempt 第一次失敗後 window 內累計，過了 window 重新計算
type attempt struct {
	failures     int
	firstFailure time.Time
	lockedUntil  time.Time
}

// expired 失敗紀錄或鎖定是否已過期
func (a *attempt) expired(now time.Time, window time.Duration) bool {
	if !a.lockedUntil.IsZero() {
		return !now.Before(a.lockedUntil)
	}
	return !now.Before(a.firstFailure.Add(window))
}

func newLockout(maxFailures int, window time.Duration) *lockout {
	if maxFailures <= 0 {
		return nil
	}
	return &lockout{
		maxFailures: maxFailures,
		window:      window,
		attempts:    make(map[string]*attempt),
		pruneAbove:  pruneAbove,
	}
}

// locked 帳號目前是否被鎖定；鎖定時間已過則重新計算
func (l *lockout) locked(account string, now time.Time) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[account]
	if !ok {
		return false
	}
	if a.expired(now, l.window) {
		delete(l.attempts, account)
		return false
	}
	return !a.lockedUntil.IsZero()
}

// fail 記錄一次失敗，window 內達到上限時回傳 true
func (l *lockout) fail(account string, now time.Time) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.attempts) >= l.pruneAbove {
		l.prune(now)
	}

	a, ok := l.attempts[account]
	if !ok || a.expired(now, l.window) {
		a = &attempt{firstFailure: now}
		l.attempts[account] = a
	}
	a.failures++
	if a.failures >= l.maxFailures {
		a.lockedUntil = now.Add(l.window)
		return true
	}
	return false
}

// prune 移除已過期的紀錄 (呼叫端需持有鎖)
func (l *lockout) prune(now time.Time) {
	for account, a := range l.attempts {
		if a.expired(now, l.window) {
			delete(l.attempts, account)
		}
	}
}

func (l *lockout) reset(account string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	delete(l.attempts, account)
	l.mu.Unlock()
}
