// Package env is the client for the Notte environment endpoints.
package env

import (
	"context"

	"github.com/Gautam-Hegde/notte-go/pkg/apiclient"
)

const (
	endpointPrefix = "env"

	envStatus = "status"
)

// Client holds no per-resource state; it exists so env calls share the
// credential and server handling of the other resource clients.
type Client struct {
	apiclient.APIClient
}

func New(apiKey, serverURL string) (Client, error) {
	return NewWithConfig(apiclient.Config{APIKey: apiKey, ServerURL: serverURL})
}

func NewWithConfig(cfg apiclient.Config) (Client, error) {
	cfg.EndpointPrefix = endpointPrefix
	base, err := apiclient.New(cfg)
	if err != nil {
		return Client{}, err
	}
	return Client{APIClient: base}, nil
}

func (c Client) UseLocal() Client {
	c.APIClient = c.APIClient.UseLocal()
	return c
}

func (c Client) UseRemote() Client {
	c.APIClient = c.APIClient.UseRemote()
	return c
}

// Status reports the state of the Notte environment as returned by the server.
func (c Client) Status(ctx context.Context) (map[string]any, error) {
	return apiclient.Request[map[string]any](ctx, c.APIClient, apiclient.MethodGet, envStatus, nil, nil)
}
