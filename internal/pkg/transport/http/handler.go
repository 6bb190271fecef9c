package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
)

// MakeHandlerFunc wires an endpoint with its request decoder and response encoder.
// Errors are written with ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes a JSON body into a new T and runs its Bind hook when *T implements
// render.Binder. The endpoint receives *T.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(render.Binder)
	if !ok {
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			return nil, badRequest(err)
		}

		return &req, nil
	}

	if err := render.Bind(r, binder); err != nil {
		return nil, badRequest(err)
	}

	return &req, nil
}

func badRequest(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("invalid request: %s", err),
		Cause:      err,
	}
}
