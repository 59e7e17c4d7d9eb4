package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, Verify("correct horse battery staple", hash))
	require.False(t, Verify("wrong password", hash))
	require.False(t, Verify("correct horse battery staple", "not-a-bcrypt-hash"))
}

func TestHashToken(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	c := HashToken("another-token")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 64)
	require.NotContains(t, a, "some-refresh-token")
}

func TestValidate(t *testing.T) {
	require.True(t, Validate("12345678"))
	require.False(t, Validate("1234567"))
	require.False(t, Validate(""))
}
