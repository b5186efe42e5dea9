package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Envelope is a transport-agnostic response. StatusCode alone decides
// whether Body is a success payload or an ErrorBody.
type Envelope struct {
	StatusCode int
	Body       interface{}
}

type ErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func BadRequest(err *Error) Envelope {
	return Envelope{
		StatusCode: http.StatusBadRequest,
		Body:       ErrorBody{Name: err.Name, Message: err.Message},
	}
}

// ServerError hides err behind a generic ServerError. Only its trace is
// kept, and only on the Error value.
func ServerError(err error) Envelope {
	serverErr := NewServerError(stackOf(err))
	return Envelope{
		StatusCode: http.StatusInternalServerError,
		Body:       ErrorBody{Name: serverErr.Name, Message: serverErr.Message},
	}
}

func Unauthorized() Envelope {
	unauthorizedErr := NewUnauthorizedError()
	return Envelope{
		StatusCode: http.StatusUnauthorized,
		Body:       ErrorBody{Name: unauthorizedErr.Name, Message: unauthorizedErr.Message},
	}
}

func OK(body interface{}) Envelope {
	return Envelope{StatusCode: http.StatusOK, Body: body}
}

func stackOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Stack != "" {
		return e.Stack
	}
	return fmt.Sprintf("%+v", err)
}

func Write(rw http.ResponseWriter, envelope Envelope) {
	Render(rw, envelope.Body, envelope.StatusCode)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
