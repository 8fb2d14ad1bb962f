package pinhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)
	hash, err := h.Hash("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, h.Compare(hash, "1234"))
	assert.False(t, h.Compare(hash, "4321"))
	assert.False(t, h.Compare("1234", "1234"), "plaintext column must not match a bcrypt hasher")
}

func TestPlain(t *testing.T) {
	var h Plain
	stored, err := h.Hash("1234")
	require.NoError(t, err)
	assert.True(t, h.Compare(stored, "1234"))
	assert.False(t, h.Compare(stored, "12345"))
}

func TestNew(t *testing.T) {
	h, err := New("", 0)
	require.NoError(t, err)
	assert.IsType(t, &Bcrypt{}, h)

	h, err = New(SchemePlain, 0)
	require.NoError(t, err)
	assert.IsType(t, Plain{}, h)

	_, err = New("md5", 0)
	assert.Error(t, err)
}
