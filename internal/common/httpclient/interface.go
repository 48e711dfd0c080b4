// Package httpclient is the transport beneath the Notte API clients. It owns the
// configured *http.Client, stamps every request with the bearer token and JSON
// content type, and normalizes every failure into an apperrors.Error of kind
// KindAPI.
package httpclient

import "context"

// HTTPClientInterface is implemented by the network transport and by the
// in-process test transport.
type HTTPClientInterface interface {
	// DoRequest sends the request and returns the 2xx response. Any other
	// outcome is returned as an apperrors.Error.
	DoRequest(ctx context.Context, opts RequestOptions) (Response, error)
}

var _ HTTPClientInterface = &HTTPClient{}
var _ HTTPClientInterface = &TestHTTPClient{}
