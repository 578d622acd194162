package auth_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/guih-henriqueee/agendamentos-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_GenerateToken(t *testing.T) {
	codec := auth.NewCodec()

	token := codec.GenerateToken("ana@x.com", "u1", "12345678901")

	decoded, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"12345678901", "ana@x.com", "u1"}, strings.Split(string(decoded), ":"))
}

func TestCodec_ValidateToken(t *testing.T) {
	codec := auth.NewCodec()
	token := codec.GenerateToken("ana@x.com", "u1", "12345678901")

	t.Run("round trip", func(t *testing.T) {
		assert.True(t, codec.ValidateToken(token, "ana@x.com", "u1", "12345678901"))
	})

	t.Run("tampered fields", func(t *testing.T) {
		assert.False(t, codec.ValidateToken(token, "outra@x.com", "u1", "12345678901"))
		assert.False(t, codec.ValidateToken(token, "ana@x.com", "u2", "12345678901"))
		assert.False(t, codec.ValidateToken(token, "ana@x.com", "u1", "00000000000"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.False(t, codec.ValidateToken(token, "ANA@X.COM", "u1", "12345678901"))
	})

	t.Run("malformed base64", func(t *testing.T) {
		assert.False(t, codec.ValidateToken("%%%não-é-base64%%%", "ana@x.com", "u1", "12345678901"))
	})

	t.Run("wrong number of fields", func(t *testing.T) {
		two := base64.StdEncoding.EncodeToString([]byte("12345678901:ana@x.com"))
		four := base64.StdEncoding.EncodeToString([]byte("12345678901:ana@x.com:u1:extra"))
		assert.False(t, codec.ValidateToken(two, "ana@x.com", "u1", "12345678901"))
		assert.False(t, codec.ValidateToken(four, "ana@x.com", "u1", "12345678901"))
	})

	t.Run("empty token", func(t *testing.T) {
		assert.False(t, codec.ValidateToken("", "ana@x.com", "u1", "12345678901"))
	})
}
