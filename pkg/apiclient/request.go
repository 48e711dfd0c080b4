package apiclient

import (
	"context"
	"net/http"

	"github.com/Gautam-Hegde/notte-go/internal/common/httpclient"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Method is one of the HTTP methods used by the Notte API.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodDelete Method = http.MethodDelete
)

// Request calls endpoint on c and decodes the response body into T.
// body, when non-nil, is sent as JSON; for DELETE it travels alongside the
// query params. An empty 2xx body yields the zero T. Every failure is an
// apperrors.Error and the zero T is returned with it.
func Request[T any](ctx context.Context, c APIClient, method Method, endpoint string, body any, params map[string]string) (T, error) {
	var out T

	switch method {
	case MethodGet, MethodPost, MethodDelete:
	default:
		return out, apperrors.APIError("Unsupported HTTP method: "+string(method), 0, nil)
	}
	if c.transport == nil {
		return out, apperrors.AuthenticationError("client is not initialized; create it with New")
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return out, apperrors.APIError("unable to encode request body", 0, err).Err(err)
		}
	}

	resp, err := c.transport.DoRequest(ctx, httpclient.RequestOptions{
		Method:      string(method),
		URL:         c.BuildURL(endpoint),
		QueryParams: params,
		Body:        payload,
	})
	if err != nil {
		return out, err
	}

	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, apperrors.APIError("unable to decode response body", resp.StatusCode, httpclient.DecodeRaw(resp.Body)).Err(err)
	}
	return out, nil
}
