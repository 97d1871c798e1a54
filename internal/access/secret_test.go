package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckSecret(hash, "hunter2"))
	assert.False(t, CheckSecret(hash, "hunter3"))
	assert.False(t, CheckSecret(hash, ""))
}

func TestHashSecret_DefaultCost(t *testing.T) {
	hash, err := HashSecret("pw", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestHashSecret_Empty(t *testing.T) {
	_, err := HashSecret("", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestCheckSecret_EmptyHash(t *testing.T) {
	assert.False(t, CheckSecret("", ""))
	assert.False(t, CheckSecret("", "pw"))
}

func TestCheckSecret_PasswordProtection(t *testing.T) {
	hash, err := HashSecret("open sesame", bcrypt.MinCost)
	require.NoError(t, err)

	p := newProtection(2, "alice")
	p.SetSecret(hash)

	unlocked := CheckSecret(p.Secret(), "open sesame")
	assert.Equal(t, Allow, Decide(p, "bob", unlocked))
}
