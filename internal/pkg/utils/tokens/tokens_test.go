package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecret(t *testing.T) {
	a, err := NewSecret()
	require.NoError(t, err)
	b, err := NewSecret()
	require.NoError(t, err)

	// 32 random bytes without padding
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
}

func TestParseToken(t *testing.T) {
	secret, ok := ParseToken("ft_abc123", "ft_")
	require.True(t, ok)
	assert.Equal(t, "abc123", secret)

	_, ok = ParseToken("tk_abc123", "ft_")
	assert.False(t, ok)

	_, ok = ParseToken("abc123", "ft_")
	assert.False(t, ok)
}

func TestHMAC256Hex(t *testing.T) {
	a := HMAC256Hex("pepper", "secret")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HMAC256Hex("pepper", "secret"))

	// a different pepper must not reproduce the digest
	assert.NotEqual(t, a, HMAC256Hex("other", "secret"))
	assert.NotEqual(t, a, HMAC256Hex("pepper", "other"))
}
