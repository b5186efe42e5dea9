package emailvalidator

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const MAX_EMAIL_LENGTH = 512

type Ozzo struct{}

func NewOzzo() *Ozzo {
	return &Ozzo{}
}

func (v *Ozzo) IsValid(email string) (bool, error) {
	err := validation.Validate(
		email,
		validation.Required,
		validation.Length(0, MAX_EMAIL_LENGTH),
		is.Email,
	)
	return err == nil, nil
}
