package addaccount

import (
	"accounts/internal/core/domain/account"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Name     account.Name
	Email    account.Email
	Password account.RawPassword
}

type Result struct {
	Account account.Account
}

type service struct {
	log        logging.Logger
	encrypter  account.Encrypter
	repository account.Repository
	now        func() time.Time
}

func New(
	log logging.Logger,
	encrypter account.Encrypter,
	repository account.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if encrypter == nil {
		panic(e.NewNilArgumentError("encrypter"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		encrypter:  encrypter,
		repository: repository,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.encrypter.Encrypt(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Err(err))
		return result, err
	}

	createdAccount, err := s.repository.Add(ctx, account.AddAccountInput{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not add new account.",
			logging.Entry("input", input),
			logging.Err(err),
		)
		return result, err
	}

	s.log.Info(ctx, "New account has been created.", logging.Entry("accountId", createdAccount.ID))
	return Result{Account: createdAccount}, nil
}
