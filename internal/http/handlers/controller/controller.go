package controller

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/http/handlers/response"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const MAX_BODY_SIZE = 64 * 1024

// Request is what a Controller sees of an inbound HTTP request.
type Request struct {
	Body    map[string]interface{}
	Headers http.Header
	Params  map[string]string
}

// Controller handles a Request and always produces an Envelope; failures are
// expressed through its status code.
type Controller interface {
	Handle(ctx context.Context, request Request) response.Envelope
}

type Handler struct {
	controller Controller
}

func Adapt(controller Controller) *Handler {
	if controller == nil {
		panic(e.NewNilArgumentError("controller"))
	}
	return &Handler{controller: controller}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	request, err := FromHTTP(r)
	if err != nil {
		response.Write(rw, response.BadRequest(response.NewInvalidParamError("body")))
		return
	}
	response.Write(rw, h.controller.Handle(r.Context(), request))
}

// FromHTTP decodes a JSON object body. An empty body yields an empty Body.
func FromHTTP(r *http.Request) (Request, error) {
	request := Request{
		Body:    make(map[string]interface{}),
		Headers: r.Header,
		Params:  make(map[string]string),
	}

	if r.Body != nil {
		decoder := json.NewDecoder(io.LimitReader(r.Body, MAX_BODY_SIZE))
		if err := decoder.Decode(&request.Body); err != nil && !errors.Is(err, io.EOF) {
			return request, err
		}
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for ix, key := range rctx.URLParams.Keys {
			request.Params[key] = rctx.URLParams.Values[ix]
		}
	}
	return request, nil
}
