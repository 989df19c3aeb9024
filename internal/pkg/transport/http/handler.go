package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"

	"github.com/hamzamalik/flight-booking-assistant/internal/app/dto"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/exception"
)

type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc glues a go-kit endpoint to chi: decode, invoke, encode,
// with all failures funneled through ErrorResponse.
func MakeHandlerFunc(e endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := dec(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := e(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := enc(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes the JSON body into T and runs its Bind hook. Decode
// failures that carry no application error are reported as a plain 400.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	binder, ok := any(request).(render.Binder)
	if !ok {
		return nil, errors.New("request type does not implement render.Binder")
	}

	if err := render.Bind(req, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	return request, nil
}

// DecodeSessionRequest handles the body-less session operations that only
// carry the session id in the URL.
func DecodeSessionRequest(_ context.Context, req *http.Request) (interface{}, error) {
	sessionID := chi.URLParam(req, "sessionID")
	if sessionID == "" {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "session id is required",
		}
	}

	return &dto.SessionRequest{SessionID: sessionID}, nil
}
