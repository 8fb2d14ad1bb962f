package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockoutDisabled(t *testing.T) {
	l := newLockout(0, time.Minute)
	assert.Nil(t, l)
	assert.False(t, l.fail("1001", time.Now()))
	assert.False(t, l.locked("1001", time.Now()))
	l.reset("1001")
}

func TestLockoutWindow(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	l := newLockout(2, time.Minute)

	assert.False(t, l.fail("1001", now))
	assert.False(t, l.locked("1001", now))
	assert.True(t, l.fail("1001", now))
	assert.True(t, l.locked("1001", now.Add(30*time.Second)))
	assert.False(t, l.locked("1002", now))

	// 時間到後解鎖並重新計算
	assert.False(t, l.locked("1001", now.Add(time.Minute)))
	assert.False(t, l.fail("1001", now.Add(time.Minute)))
}

func TestLockoutReset(t *testing.T) {
	now := time.Now()
	l := newLockout(2, time.Minute)

	l.fail("1001", now)
	l.reset("1001")
	assert.False(t, l.fail("1001", now))
	assert.False(t, l.locked("1001", now))
}

func TestLockoutFailuresDecay(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	l := newLockout(3, time.Minute)

	assert.False(t, l.fail("1001", now))
	assert.False(t, l.fail("1001", now.Add(10*time.Second)))

	// 第一次失敗已超過 window，重新計算
	later := now.Add(time.Minute)
	assert.False(t, l.fail("1001", later))
	assert.False(t, l.locked("1001", later))
	assert.False(t, l.fail("1001", later.Add(time.Second)))
	assert.True(t, l.fail("1001", later.Add(2*time.Second)))
	assert.True(t, l.locked("1001", later.Add(3*time.Second)))
}

func TestLockoutPrunesStaleAccounts(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	l := newLockout(3, time.Minute)
	l.pruneAbove = 4

	for _, account := range []string{"2001", "2002", "2003", "2004"} {
		l.fail(account, now)
	}
	assert.Len(t, l.attempts, 4)

	l.fail("1001", now.Add(2*time.Minute))
	assert.Len(t, l.attempts, 1)
	assert.Contains(t, l.attempts, "1001")
}
