// Package notte is the entry point of the Notte SDK. It bundles the session,
// agent and environment clients behind one value:
//
//	client, err := notte.NewClient("", "") // NOTTE_API_KEY, NOTTE_SERVER_URL
//	if err != nil {
//		return err
//	}
//	client.Sessions, err = client.Sessions.Start(ctx, notte.SessionStartRequest{})
//
// Every client is an immutable value; keep the copy returned by an operation.
package notte

import (
	"github.com/Gautam-Hegde/notte-go/pkg/agents"
	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/apiclient"
	"github.com/Gautam-Hegde/notte-go/pkg/env"
	"github.com/Gautam-Hegde/notte-go/pkg/sessions"
)

type (
	SessionsClient = sessions.Client
	AgentsClient   = agents.Client
	EnvClient      = env.Client
	Config         = apiclient.Config

	SessionStartRequest = api.SessionStartRequest
	SessionRequest      = api.SessionRequest
	SessionListRequest  = api.SessionListRequest
	SessionResponse     = api.SessionResponse
	AgentRunRequest     = api.AgentRunRequest
	AgentListRequest    = api.AgentListRequest
	AgentResponse       = api.AgentResponse
	AgentStatusResponse = agents.StatusResponse
)

const (
	DefaultServerURL = apiclient.DefaultServerURL
	LocalServerURL   = apiclient.LocalServerURL
)

var (
	NewSessionsClient = sessions.New
	NewAgentsClient   = agents.New
	NewEnvClient      = env.New
)

// Client groups one client per resource. The three share credentials and
// server URL but each owns its transport.
type Client struct {
	Sessions SessionsClient
	Agents   AgentsClient
	Env      EnvClient
}

// NewClient builds all resource clients from apiKey and serverURL, which fall
// back to the environment when empty.
func NewClient(apiKey, serverURL string) (Client, error) {
	return NewClientWithConfig(Config{APIKey: apiKey, ServerURL: serverURL})
}

// NewClientWithConfig is NewClient with full control over the base
// configuration. cfg.EndpointPrefix is ignored.
func NewClientWithConfig(cfg Config) (Client, error) {
	s, err := sessions.NewWithConfig(cfg)
	if err != nil {
		return Client{}, err
	}
	a, err := agents.NewWithConfig(cfg)
	if err != nil {
		return Client{}, err
	}
	e, err := env.NewWithConfig(cfg)
	if err != nil {
		return Client{}, err
	}
	return Client{Sessions: s, Agents: a, Env: e}, nil
}

// UseLocal returns a copy of c with every resource client pointed at the
// local server. Stored responses are kept.
func (c Client) UseLocal() Client {
	return Client{
		Sessions: c.Sessions.UseLocal(),
		Agents:   c.Agents.UseLocal(),
		Env:      c.Env.UseLocal(),
	}
}

// UseRemote returns a copy of c with every resource client pointed at the
// hosted API.
func (c Client) UseRemote() Client {
	return Client{
		Sessions: c.Sessions.UseRemote(),
		Agents:   c.Agents.UseRemote(),
		Env:      c.Env.UseRemote(),
	}
}
