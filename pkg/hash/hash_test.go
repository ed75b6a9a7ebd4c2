package hash

import (
	"strings"
	"testing"

	"guestsign/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	config.Set("app.bcrypt_cost", 4)
}

func TestBcryptHash(t *testing.T) {
	hashed, err := BcryptHash("admin123456")
	require.NoError(t, err)
	assert.True(t, BcryptIsHashed(hashed))
	assert.True(t, BcryptCheck("admin123456", hashed))
	assert.False(t, BcryptCheck("admin", hashed))
}

func TestBcryptHashTooLong(t *testing.T) {
	hashed, err := BcryptHash(strings.Repeat("a", 80))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.Empty(t, hashed)
}

func TestBcryptIsHashed(t *testing.T) {
	assert.False(t, BcryptIsHashed(""))
	assert.False(t, BcryptIsHashed("admin123456"))
	// 与哈希等长的明文
	assert.False(t, BcryptIsHashed(strings.Repeat("x", 60)))
}
