// Package apiclient is the base client shared by the Notte resource clients.
// An APIClient is an immutable value: switching servers returns a copy and
// the underlying transport is shared read-only between copies.
package apiclient

import (
	"os"
	"strings"

	"github.com/Gautam-Hegde/notte-go/internal/common/httpclient"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
)

const (
	DefaultServerURL = "https://api.notte.cc"
	LocalServerURL   = "http://localhost:8000"

	// EnvAPIKey and EnvServerURL are consulted when Config leaves the
	// corresponding field empty.
	EnvAPIKey    = "NOTTE_API_KEY"
	EnvServerURL = "NOTTE_SERVER_URL"
)

// Config holds the inputs of New. Empty fields fall back to the environment
// and then to built-in defaults.
type Config struct {
	APIKey         string
	ServerURL      string
	EndpointPrefix string // path segment of the resource group, e.g. "sessions"

	// Transport replaces the network transport, mainly for tests.
	Transport httpclient.HTTPClientInterface
}

// APIClient is a handle on one resource group of the Notte API.
type APIClient struct {
	transport      httpclient.HTTPClientInterface
	serverURL      string
	endpointPrefix string
}

// New resolves credentials and server URL and builds the transport.
// It fails with an authentication error when no API key is available.
func New(cfg Config) (APIClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return APIClient{}, apperrors.AuthenticationError("")
	}

	serverURL := cfg.ServerURL
	if serverURL == "" {
		serverURL = os.Getenv(EnvServerURL)
	}
	if serverURL == "" {
		serverURL = DefaultServerURL
	}

	transport := cfg.Transport
	if transport == nil {
		transport = httpclient.NewClient(apiKey)
	}

	return APIClient{
		transport:      transport,
		serverURL:      strings.TrimRight(serverURL, "/"),
		endpointPrefix: strings.Trim(cfg.EndpointPrefix, "/"),
	}, nil
}

// UseLocal returns a copy of c pointed at the local development server.
func (c APIClient) UseLocal() APIClient {
	c.serverURL = LocalServerURL
	return c
}

// UseRemote returns a copy of c pointed at the hosted Notte API.
func (c APIClient) UseRemote() APIClient {
	c.serverURL = DefaultServerURL
	return c
}

func (c APIClient) ServerURL() string {
	return c.serverURL
}

func (c APIClient) EndpointPrefix() string {
	return c.endpointPrefix
}

// BuildURL joins the server URL, the endpoint prefix (if any) and endpoint.
// An empty endpoint addresses the prefix root and yields a trailing slash.
func (c APIClient) BuildURL(endpoint string) string {
	base := c.serverURL
	if c.endpointPrefix != "" {
		base += "/" + c.endpointPrefix
	}
	return base + "/" + endpoint
}
