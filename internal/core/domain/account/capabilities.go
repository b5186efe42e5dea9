package account

type EmailValidator interface {
	IsValid(email string) (bool, error)
}

type Encrypter interface {
	Encrypt(password RawPassword) (PasswordHash, error)
}
