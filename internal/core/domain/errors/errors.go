// Package errors holds programming and state errors shared by the domain
// packages. Business failures live next to their aggregate.
package errors

import "fmt"

// InvalidStateError reports an entity that violates its own invariants,
// usually after being decoded from storage.
type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.msg
}

// NilArgumentError is raised (as a panic value) by constructors that
// receive a nil collaborator.
type NilArgumentError struct {
	Argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{Argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.Argument)
}
