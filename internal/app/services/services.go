package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	addaccount "accounts/internal/core/services/add_account"
)

type Services struct {
	AddAccount services.Service[addaccount.Input, addaccount.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.AddAccount = addaccount.New(
		deps.Logger,
		deps.Encrypter,
		deps.AccountRepository,
		deps.Now,
	)

	return s
}
