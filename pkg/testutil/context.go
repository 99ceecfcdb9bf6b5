package testutil

import (
	"net/http"

	"treasury/pkg/domain"
	"treasury/pkg/requestcontext"
)

// WithCaller marks req as authenticated by caller, as RequireAuth would.
// An empty caller leaves the request unauthenticated.
func WithCaller(req *http.Request, caller domain.Address) *http.Request {
	if caller == "" {
		return req
	}
	return req.WithContext(requestcontext.WithCaller(req.Context(), caller))
}

// WithRequestID sets the request id normally assigned by the RequestID middleware.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
