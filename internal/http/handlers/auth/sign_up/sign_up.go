package signup

import (
	"accounts/internal/core/domain/account"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/services"
	addaccount "accounts/internal/core/services/add_account"
	"accounts/internal/http/handlers/controller"
	"accounts/internal/http/handlers/response"
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Checked in this order; the first missing one is reported.
var requiredFields = []string{"name", "email", "password", "passwordConfirmation"}

type Input struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

type Controller struct {
	log            logging.Logger
	emailValidator account.EmailValidator
	addAccount     services.Service[addaccount.Input, addaccount.Result]
}

func New(
	log logging.Logger,
	emailValidator account.EmailValidator,
	addAccount services.Service[addaccount.Input, addaccount.Result],
) *Controller {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if emailValidator == nil {
		panic(e.NewNilArgumentError("emailValidator"))
	}
	if addAccount == nil {
		panic(e.NewNilArgumentError("addAccount"))
	}
	return &Controller{
		log:            log,
		emailValidator: emailValidator,
		addAccount:     addAccount,
	}
}

func (c *Controller) Handle(ctx context.Context, request controller.Request) (res response.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			c.log.Error(
				ctx,
				"Sign up panicked.",
				logging.Err(fmt.Errorf("sign up panicked: %v", r)),
				logging.Entry("stack", stack),
			)
			res = response.ServerError(response.NewServerError(fmt.Sprintf("%v\n%s", r, stack)))
		}
	}()

	input, badParam := parseInput(request.Body)
	if badParam != nil {
		return response.BadRequest(badParam)
	}
	if input.Password != input.PasswordConfirmation {
		return response.BadRequest(response.NewInvalidParamError("passwordConfirmation"))
	}

	isValidEmail, err := c.emailValidator.IsValid(input.Email)
	if err != nil {
		c.log.Error(ctx, "Could not validate email.", logging.Err(err))
		return response.ServerError(err)
	}
	if !isValidEmail {
		return response.BadRequest(response.NewInvalidParamError("email"))
	}

	result, err := c.addAccount.Run(ctx, addaccount.Input{
		Name:     account.Name(input.Name),
		Email:    account.Email(input.Email),
		Password: account.RawPassword(input.Password),
	})
	if errors.Is(err, context.Canceled) {
		c.log.Info(ctx, "Sign up has been canceled.")
		return response.ServerError(err)
	}
	if err != nil {
		c.log.Error(ctx, "Could not sign up.", logging.Err(err))
		return response.ServerError(err)
	}

	body := response.Account{}
	body.FromDomainAccount(result.Account)
	return response.OK(body)
}

func parseInput(body map[string]interface{}) (input Input, badParam *response.Error) {
	for _, field := range requiredFields {
		if !isPresent(body[field]) {
			return input, response.NewMissingParamError(field)
		}
	}

	values := make([]string, len(requiredFields))
	for ix, field := range requiredFields {
		value, ok := body[field].(string)
		if !ok {
			return input, response.NewInvalidParamError(field)
		}
		values[ix] = value
	}

	return Input{
		Name:                 values[0],
		Email:                values[1],
		Password:             values[2],
		PasswordConfirmation: values[3],
	}, nil
}

// Arrays and objects are present even when empty; the type check rejects them.
func isPresent(value interface{}) bool {
	switch value.(type) {
	case []interface{}, map[string]interface{}:
		return true
	}
	return validation.Validate(value, validation.Required) == nil
}
