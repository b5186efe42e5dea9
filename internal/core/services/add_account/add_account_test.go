package addaccount

import (
	"accounts/internal/core/domain/account"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	NAME         = account.Name("valid_name")
	EMAIL        = account.Email("valid_email")
	RAW_PASSWORD = account.RawPassword("valid_password")
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	Encrypter  *account.FakeEncrypter
	Repository *account.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Encrypter = account.NewFakeEncrypter()
	suite.Repository = account.NewFakeRepository()
	suite.Service = New(
		suite.Logger,
		suite.Encrypter,
		suite.Repository,
		func() time.Time { return NOW },
	)
}

func TestAddAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(""), result.Account.ID)
	assert.Equal(NAME, result.Account.Name)
	assert.Equal(EMAIL, result.Account.Email)
	assert.Equal(NOW, result.Account.CreatedAt)
	assert.NotEqual(account.PasswordHash(RAW_PASSWORD), result.Account.PasswordHash)
	assert.NotEmpty(result.Account.PasswordHash)
}

func (suite *testSuite) TestEncrypterCalledWithPlaintextPassword() {
	suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Equal([]account.RawPassword{RAW_PASSWORD}, suite.Encrypter.Calls)
}

func (suite *testSuite) TestRepositoryReceivesHashNotPlaintext() {
	suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD},
	)

	expectedHash, err := account.NewFakeEncrypter().Encrypt(RAW_PASSWORD)

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.Repository.Added, 1)
	assert.Equal(
		account.AddAccountInput{
			Name:         NAME,
			Email:        EMAIL,
			PasswordHash: expectedHash,
			CreatedAt:    NOW,
		},
		suite.Repository.Added[0],
	)
	assert.NotEqual(account.PasswordHash(RAW_PASSWORD), suite.Repository.Added[0].PasswordHash)
}

func (suite *testSuite) TestEncrypterError() {
	suite.Encrypter.ReturnError = true

	_, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.Empty(suite.Repository.Added)
	assert.Equal(1, suite.Logger.Count(logging.ERROR))
}

func (suite *testSuite) TestRepositoryError() {
	suite.Repository.ReturnError = true

	_, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.Len(suite.Repository.Added, 1)
	assert.Equal(1, suite.Logger.Count(logging.ERROR))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Name: "another_name", Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.Equal(0, suite.Logger.Count(logging.ERROR))
}

func (suite *testSuite) TestNilArgumentsPanic() {
	now := func() time.Time { return NOW }
	assert := suite.Require()
	assert.Panics(func() { New(nil, suite.Encrypter, suite.Repository, now) })
	assert.Panics(func() { New(suite.Logger, nil, suite.Repository, now) })
	assert.Panics(func() { New(suite.Logger, suite.Encrypter, nil, now) })
	assert.Panics(func() { New(suite.Logger, suite.Encrypter, suite.Repository, nil) })
}
