package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeEmailValidator struct {
	IsValidResult bool
	ReturnError   bool
	Calls         []string
	lock          sync.Mutex
}

func NewFakeEmailValidator(isValid bool) *FakeEmailValidator {
	return &FakeEmailValidator{IsValidResult: isValid}
}

func (v *FakeEmailValidator) IsValid(email string) (bool, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.Calls = append(v.Calls, email)
	if v.ReturnError {
		return false, fmt.Errorf("could not validate email %q", email)
	}
	return v.IsValidResult, nil
}

type FakeEncrypter struct {
	ReturnError bool
	Calls       []RawPassword
	lock        sync.Mutex
}

func NewFakeEncrypter() *FakeEncrypter {
	return &FakeEncrypter{}
}

func (h *FakeEncrypter) Encrypt(password RawPassword) (PasswordHash, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.Calls = append(h.Calls, password)
	if h.ReturnError {
		return "", fmt.Errorf("could not encrypt password")
	}
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

type FakeRepository struct {
	Accounts    []Account
	Added       []AddAccountInput
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Add(ctx context.Context, input AddAccountInput) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Added = append(r.Added, input)
	if r.ReturnError {
		return a, fmt.Errorf("could not add account %v", input)
	}
	for _, existing := range r.Accounts {
		if existing.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
	}
	a = Account{
		ID:           ID(fmt.Sprint(len(r.Accounts) + 1)),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}
