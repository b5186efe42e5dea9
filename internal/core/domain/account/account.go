package account

import (
	e "accounts/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID string

type Name string

type Email string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

func (p PasswordHash) MarshalText() ([]byte, error) {
	return []byte("***"), nil
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

func (p RawPassword) MarshalText() ([]byte, error) {
	return []byte("***"), nil
}

type Account struct {
	ID           ID
	Name         Name
	Email        Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (a *Account) Validate() error {
	if a.ID == "" {
		return e.NewInvalidStateError("account ID is not set")
	}
	if a.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for account %s", a.ID))
	}
	return nil
}
