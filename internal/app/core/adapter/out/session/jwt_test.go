package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
)

const secret = "0123456789abcdef-test"

func TestIssueAndParse(t *testing.T) {
	m, err := NewTokenManager(secret)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	token, err := m.Issue(domain.Session{AccountNumber: "1001", IssuedAt: now, ExpiresAt: now.Add(time.Minute)})
	require.NoError(t, err)

	sess, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "1001", sess.AccountNumber)
	assert.True(t, sess.ExpiresAt.Equal(now.Add(time.Minute)))
}

func TestParseRejects(t *testing.T) {
	m, err := NewTokenManager(secret)
	require.NoError(t, err)
	other, err := NewTokenManager("another-secret-of-16")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	expired, err := m.Issue(domain.Session{AccountNumber: "1001", IssuedAt: past, ExpiresAt: past.Add(time.Minute)})
	require.NoError(t, err)
	_, err = m.Parse(expired)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	forged, err := other.Issue(domain.Session{AccountNumber: "1001", IssuedAt: time.Now()})
	require.NoError(t, err)
	_, err = m.Parse(forged)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: issuer, Subject: "1001"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(unsigned)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	_, err = m.Parse("garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestShortSecret(t *testing.T) {
	_, err := NewTokenManager("short")
	assert.Error(t, err)
}
