package encrypter

import (
	"accounts/internal/core/domain/account"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newBcrypt(t *testing.T, secret string, cost int) *Bcrypt {
	h, err := NewBcrypt(secret, cost)
	require.Nil(t, err)
	return h
}

func matches(h *Bcrypt, password account.RawPassword, hash account.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.pepper(password)) == nil
}

func TestEncrypt(t *testing.T) {
	type testcase struct {
		ix       int
		secret   string
		cost     int
		password string
	}
	cases := []testcase{
		{ix: 1, secret: "test", cost: 5, password: "valid_password"},
		{ix: 2, secret: "", cost: 5, password: "123"},
		{ix: 3, secret: "a", cost: 7, password: "password password"},
		{ix: 4, secret: "   b   ", cost: 10, password: "   test   "},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.ix), func(t *testing.T) {
			h := newBcrypt(t, c.secret, c.cost)
			hash, err := h.Encrypt(account.RawPassword(c.password))

			require.Nil(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, account.PasswordHash(c.password), hash)
			assert.True(t, matches(h, account.RawPassword(c.password), hash))
		})
	}
}

func TestEncryptIsSalted(t *testing.T) {
	h := newBcrypt(t, "test", 5)

	first, err := h.Encrypt("valid_password")
	require.Nil(t, err)
	second, err := h.Encrypt("valid_password")
	require.Nil(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, matches(h, "valid_password", first))
	assert.True(t, matches(h, "valid_password", second))
}

func TestEncryptDoesNotMatch(t *testing.T) {
	type testcase struct {
		ix              int
		secretToHash    string
		secretToCheck   string
		passwordToHash  string
		passwordToCheck string
	}
	cases := []testcase{
		{ix: 1, secretToHash: "test", secretToCheck: "test", passwordToHash: "test", passwordToCheck: "test "},
		{ix: 2, secretToHash: "test", secretToCheck: "test ", passwordToHash: "test", passwordToCheck: "test"},
		{ix: 3, secretToHash: "", secretToCheck: "", passwordToHash: "", passwordToCheck: " "},
		{ix: 4, secretToHash: "a", secretToCheck: "b", passwordToHash: "valid_password", passwordToCheck: "valid_password"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.ix), func(t *testing.T) {
			hash, err := newBcrypt(t, c.secretToHash, 5).Encrypt(account.RawPassword(c.passwordToHash))
			require.Nil(t, err)

			assert.False(t, matches(newBcrypt(t, c.secretToCheck, 5), account.RawPassword(c.passwordToCheck), hash))
		})
	}
}

func TestLongPasswordsKeepTheSecret(t *testing.T) {
	password := account.RawPassword(strings.Repeat("p", 100))
	hash, err := newBcrypt(t, "first", 5).Encrypt(password)
	require.Nil(t, err)

	assert.False(t, matches(newBcrypt(t, "second", 5), password, hash))
	assert.False(t, matches(newBcrypt(t, "first", 5), password+"suffix", hash))
}

func TestNewBcryptInvalidCost(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1, 100} {
		_, err := NewBcrypt("test", cost)
		assert.NotNil(t, err, "cost %d", cost)
	}
}
