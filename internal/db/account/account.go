package account

import (
	"accounts/internal/core/domain/account"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/db"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const addAccountQuery = `INSERT INTO account (id, name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, email, password_hash, created_at`

type dbAccount struct {
	ID           pgtype.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type PgxAccountRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxAccountRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAccountRepository{db: db}
}

func (r *PgxAccountRepository) Add(ctx context.Context, input account.AddAccountInput) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		addAccountQuery,
		encodeID(uuid.New()),
		string(input.Name),
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)

	var dba dbAccount
	err = row.Scan(&dba.ID, &dba.Name, &dba.Email, &dba.PasswordHash, &dba.CreatedAt)

	var errEmailUniqueConstraint *pgconn.PgError
	if errors.As(err, &errEmailUniqueConstraint) {
		if errEmailUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errEmailUniqueConstraint.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}

	if err != nil {
		return a, err
	}
	a = decodeAccount(dba)
	err = a.Validate()
	if err != nil {
		return a, err
	}
	return a, nil
}

func encodeID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Status: pgtype.Present}
}

func decodeID(id pgtype.UUID) account.ID {
	if id.Status != pgtype.Present {
		return ""
	}
	return account.ID(uuid.UUID(id.Bytes).String())
}

func decodeAccount(a dbAccount) account.Account {
	return account.Account{
		ID:           decodeID(a.ID),
		Name:         account.Name(a.Name),
		Email:        account.Email(a.Email),
		PasswordHash: account.PasswordHash(a.PasswordHash),
		CreatedAt:    a.CreatedAt,
	}
}
