package encrypter

import (
	"accounts/internal/core/domain/account"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt peppers the password with HMAC-SHA256 keyed by a server-side secret
// and stores the bcrypt hash of the hex digest. The digest always fits the
// 72 byte bcrypt input limit, so long passwords never lose the pepper.
type Bcrypt struct {
	secret []byte
	cost   int
}

func NewBcrypt(secret string, cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	return &Bcrypt{secret: []byte(secret), cost: cost}, nil
}

func (h *Bcrypt) Encrypt(password account.RawPassword) (hash account.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.pepper(password), h.cost)
	if err != nil {
		return hash, fmt.Errorf("could not hash password: %w", err)
	}
	return account.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) pepper(password account.RawPassword) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}
