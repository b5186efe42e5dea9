package response

import (
	"accounts/internal/core/domain/account"
)

// Account is the public view of an account. The password hash is never part
// of it.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.ID = string(da.ID)
	a.Name = string(da.Name)
	a.Email = string(da.Email)
}
