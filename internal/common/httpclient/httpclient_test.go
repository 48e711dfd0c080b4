package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"auth":"` + r.Header.Get("Authorization") +
			`","content_type":"` + r.Header.Get("Content-Type") +
			`","query":"` + r.URL.RawQuery + `"}`))
	})
	r.Delete("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `","body":` + string(body) + `}`))
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"x"}`))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	})
	r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	return r
}

// transports returns a network client and an in-process client backed by the
// same router, so both paths are checked against identical expectations.
func transports(t *testing.T) map[string]struct {
	client  HTTPClientInterface
	baseURL string
} {
	t.Helper()
	router := newTestRouter(t)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return map[string]struct {
		client  HTTPClientInterface
		baseURL string
	}{
		"network":    {NewClient("key-123"), srv.URL},
		"in-process": {NewTestClient("key-123", router), "http://notte.test"},
	}
}

func TestHeadersAndQuery(t *testing.T) {
	for name, tc := range transports(t) {
		t.Run(name, func(t *testing.T) {
			resp, err := tc.client.DoRequest(context.Background(), RequestOptions{
				Method:      http.MethodGet,
				URL:         tc.baseURL + "/echo",
				QueryParams: map[string]string{"limit": "10", "only_active": "true"},
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"auth":"Bearer key-123","content_type":"application/json","query":"limit=10&only_active=true"}`, string(resp.Body))
		})
	}
}

func TestDeleteCarriesBody(t *testing.T) {
	for name, tc := range transports(t) {
		t.Run(name, func(t *testing.T) {
			resp, err := tc.client.DoRequest(context.Background(), RequestOptions{
				Method: http.MethodDelete,
				URL:    tc.baseURL + "/things/t1",
				Body:   []byte(`{"force":true}`),
			})
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"t1","body":{"force":true}}`, string(resp.Body))
		})
	}
}

func TestNon2xxNormalization(t *testing.T) {
	for name, tc := range transports(t) {
		t.Run(name, func(t *testing.T) {
			_, err := tc.client.DoRequest(context.Background(), RequestOptions{
				Method: http.MethodGet,
				URL:    tc.baseURL + "/missing",
			})
			require.Error(t, err)
			var appErr apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.KindAPI, appErr.Kind())
			assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
			assert.Equal(t, "x", appErr.Error())
			assert.Equal(t, map[string]any{"message": "x"}, appErr.RawResponse())
			assert.True(t, apperrors.IsNotFound(err))

			_, err = tc.client.DoRequest(context.Background(), RequestOptions{
				Method: http.MethodGet,
				URL:    tc.baseURL + "/broken",
			})
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "API error", appErr.Error())
			assert.Equal(t, http.StatusBadGateway, appErr.StatusCode())
			assert.Equal(t, "upstream exploded", appErr.RawResponse())
		})
	}
}

func TestCheckResponseMessageMustBeString(t *testing.T) {
	_, err := checkResponse(http.StatusBadRequest, []byte(`{"message":{"detail":"nested"}}`))
	var appErr apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "API error", appErr.Error())
	assert.Equal(t, map[string]any{"message": map[string]any{"detail": "nested"}}, appErr.RawResponse())

	_, err = checkResponse(http.StatusBadRequest, []byte(`{"message":""}`))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "API error", appErr.Error())
}

func TestNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	deadURL := srv.URL
	srv.Close()

	_, err := NewClient("k").DoRequest(context.Background(), RequestOptions{
		Method: http.MethodGet,
		URL:    deadURL + "/sessions",
	})
	require.Error(t, err)
	var appErr apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindAPI, appErr.Kind())
	assert.Equal(t, "No response from server", appErr.Error())
	assert.Zero(t, appErr.StatusCode())
	assert.Equal(t, RequestInfo{Method: http.MethodGet, URL: deadURL + "/sessions"}, appErr.RawResponse())

	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	client := NewClient("k", ClientOptions{Timeout: 50 * time.Millisecond})
	_, err := client.DoRequest(context.Background(), RequestOptions{
		Method: http.MethodGet,
		URL:    srv.URL + "/slow",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsAPIError(err))
	assert.Zero(t, apperrors.StatusCodeOf(err))
}

func TestRequestSetupFailure(t *testing.T) {
	_, err := NewClient("k").DoRequest(context.Background(), RequestOptions{
		Method: http.MethodGet,
		URL:    "://missing-scheme",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsAPIError(err))
	assert.Zero(t, apperrors.StatusCodeOf(err))
	assert.Contains(t, err.Error(), "missing protocol scheme")
}

func TestDefaultTimeout(t *testing.T) {
	c := NewClient("k")
	assert.Equal(t, DefaultRequestTimeout, c.httpClient.Timeout)
	assert.Equal(t, 60*time.Second, DefaultRequestTimeout)

	custom := &http.Client{}
	assert.Same(t, custom, NewClient("k", ClientOptions{HTTPClient: custom}).httpClient)
}

func TestDecodeRaw(t *testing.T) {
	assert.Nil(t, DecodeRaw(nil))
	assert.Equal(t, "plain", DecodeRaw([]byte("plain")))
	assert.Equal(t, []any{float64(1), "a"}, DecodeRaw([]byte(`[1,"a"]`)))
}
