package account

import (
	"context"
	"time"
)

type AddAccountInput struct {
	Name         Name
	Email        Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// Repository generates account identifiers. Email uniqueness is enforced by
// the storage, not by callers.
type Repository interface {
	Add(ctx context.Context, input AddAccountInput) (Account, error)
}
