package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
)

// TestHTTPClient serves requests in-process through an http.Handler using
// httptest.NewRecorder, so no network is involved. Headers and error
// normalization match HTTPClient.
type TestHTTPClient struct {
	header  http.Header
	handler http.Handler
}

// NewTestClient creates a transport authenticating with apiKey that dispatches
// to handler.
func NewTestClient(apiKey string, handler http.Handler) *TestHTTPClient {
	return &TestHTTPClient{
		header:  defaultHeader(apiKey),
		handler: handler,
	}
}

func (c *TestHTTPClient) DoRequest(ctx context.Context, opts RequestOptions) (Response, error) {
	req, err := newRequest(ctx, c.header, opts)
	if err != nil {
		return Response{}, err
	}
	// Servers always hand handlers a non-nil body.
	if req.Body == nil {
		req.Body = http.NoBody
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	return checkResponse(rr.Code, rr.Body.Bytes())
}
