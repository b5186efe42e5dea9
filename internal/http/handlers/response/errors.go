package response

import "fmt"

const (
	MissingParamErrorName = "MissingParamError"
	InvalidParamErrorName = "InvalidParamError"
	ServerErrorName       = "ServerError"
	UnauthorizedErrorName = "UnauthorizedError"
)

// Error is a caller-facing failure. Name tags the kind; Stack keeps the
// diagnostic trace of the cause and is never rendered.
type Error struct {
	Name    string
	Message string
	Stack   string
}

func (e *Error) Error() string {
	return e.Message
}

func NewMissingParamError(field string) *Error {
	return &Error{
		Name:    MissingParamErrorName,
		Message: fmt.Sprintf("Missing param: %s", field),
	}
}

func NewInvalidParamError(field string) *Error {
	return &Error{
		Name:    InvalidParamErrorName,
		Message: fmt.Sprintf("Invalid param: %s", field),
	}
}

func NewServerError(stack string) *Error {
	return &Error{
		Name:    ServerErrorName,
		Message: "Internal server error",
		Stack:   stack,
	}
}

func NewUnauthorizedError() *Error {
	return &Error{
		Name:    UnauthorizedErrorName,
		Message: "Unauthorized",
	}
}
