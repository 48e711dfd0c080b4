package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Gautam-Hegde/notte-go/internal/common/logtrace"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// DefaultRequestTimeout bounds every request made through a client built by NewClient.
const DefaultRequestTimeout = 60 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestOptions describes one API call. URL is absolute; QueryParams are
// merged into it.
type RequestOptions struct {
	Method      string
	URL         string
	QueryParams map[string]string
	Body        []byte
}

// Response is a successful (2xx) server reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// RequestInfo identifies a request in errors raised before any response was
// received. Headers are left out so the API key never ends up in an error.
type RequestInfo struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// HTTPClient sends requests over the network. It is configured once and is
// safe for concurrent use.
type HTTPClient struct {
	header     http.Header
	httpClient *http.Client
}

// ClientOptions tunes the transport built by NewClient.
type ClientOptions struct {
	Timeout    time.Duration // defaults to DefaultRequestTimeout
	HTTPClient *http.Client  // used as-is when set, Timeout is then ignored
}

// NewClient creates a transport authenticating with apiKey.
func NewClient(apiKey string, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}
	httpClient := clientOpts.HTTPClient
	if httpClient == nil {
		timeout := clientOpts.Timeout
		if timeout == 0 {
			timeout = DefaultRequestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &HTTPClient{
		header:     defaultHeader(apiKey),
		httpClient: httpClient,
	}
}

func defaultHeader(apiKey string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer "+apiKey)
	return h
}

// DoRequest sends the request described by opts.
func (c *HTTPClient) DoRequest(ctx context.Context, opts RequestOptions) (Response, error) {
	ctx, requestID := logtrace.WithRequestID(ctx)
	logger := zerolog.Ctx(ctx).With().
		Str("request_id", requestID).
		Str("method", opts.Method).
		Str("url", opts.URL).
		Logger()

	req, err := newRequest(ctx, c.header, opts)
	if err != nil {
		logger.Debug().Err(err).Msg("unable to build request")
		return Response{}, err
	}

	start := time.Now()
	logger.Debug().Msg("sending request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("no response")
		return Response{}, noResponseError(req, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("unable to read response body")
		return Response{}, noResponseError(req, err)
	}
	logger.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("response received")

	return checkResponse(resp.StatusCode, body)
}

// newRequest builds the outgoing request. Failures here mean nothing was sent.
func newRequest(ctx context.Context, header http.Header, opts RequestOptions) (*http.Request, error) {
	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, requestSetupError(err)
	}
	if len(opts.QueryParams) > 0 {
		q := u.Query()
		for k, v := range opts.QueryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), body)
	if err != nil {
		return nil, requestSetupError(err)
	}
	req.Header = header.Clone()
	return req, nil
}

// checkResponse turns a non-2xx reply into an APIError carrying the status and
// the decoded body.
func checkResponse(status int, body []byte) (Response, error) {
	if status >= 200 && status < 300 {
		return Response{StatusCode: status, Body: body}, nil
	}
	msg := "API error"
	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.String() != "" {
		msg = m.String()
	}
	return Response{}, apperrors.APIError(msg, status, DecodeRaw(body))
}

// DecodeRaw decodes body as JSON, falling back to the body as a string when it
// is not valid JSON. An empty body yields nil.
func DecodeRaw(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

func noResponseError(req *http.Request, err error) error {
	info := RequestInfo{Method: req.Method, URL: req.URL.String()}
	return apperrors.APIError("No response from server", 0, info).Err(err)
}

func requestSetupError(err error) error {
	return apperrors.APIError(err.Error(), 0, err).Err(err)
}
