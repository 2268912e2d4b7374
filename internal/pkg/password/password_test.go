package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, h.Verify("s3cret-pass", hash))
	assert.False(t, h.Verify("wrong-pass", hash))
	assert.False(t, h.Verify("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := NewHasher()

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same-password", a))
	assert.True(t, h.Verify("same-password", b))
}
