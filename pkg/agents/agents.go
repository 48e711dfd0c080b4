// Package agents is the client for the Notte agent endpoints. Like
// sessions.Client, a Client is a value that is replaced, never modified, by
// the operations that observe an agent.
package agents

import (
	"context"
	"strings"

	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/apiclient"
)

const (
	endpointPrefix = "agents"

	agentRun    = "run"
	agentStop   = "{agent_id}/stop"
	agentStatus = "{agent_id}"
	agentList   = ""
)

// StatusResponse is the agent status with free-form output.
type StatusResponse = api.AgentStatusResponse[map[string]any]

type Client struct {
	apiclient.APIClient
	// LastAgentResponse is the reply of the most recent Run or Stop call.
	LastAgentResponse *api.AgentResponse
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

// Run starts an agent on an existing session. On error c is returned as is.
func (c Client) Run(ctx context.Context, req api.AgentRunRequest) (Client, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return c, err
	}
	resp, err := apiclient.Request[api.AgentResponse](ctx, c.APIClient, apiclient.MethodPost, agentRun, req, nil)
	if err != nil {
		return c, err
	}
	c.LastAgentResponse = &resp
	return c, nil
}

// Stop stops agentID, or the last agent seen by c. The stop reply's output is
// stored as the Data of LastAgentResponse.
func (c Client) Stop(ctx context.Context, agentID string) (Client, error) {
	id, err := c.resolveID(agentID)
	if err != nil {
		return c, err
	}
	endpoint := strings.Replace(agentStop, "{agent_id}", id, 1)
	resp, err := apiclient.Request[StatusResponse](ctx, c.APIClient, apiclient.MethodDelete, endpoint, nil, nil)
	if err != nil {
		return c, err
	}
	stored := api.AgentResponse{
		ID:        resp.ID,
		SessionID: resp.SessionID,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
	if resp.Output != nil {
		stored.Data = *resp.Output
	}
	c.LastAgentResponse = &stored
	return c, nil
}

// Status returns the state of agentID, or of the last agent seen by c. The
// reply is returned only; LastAgentResponse is left as is.
func (c Client) Status(ctx context.Context, agentID string) (StatusResponse, error) {
	id, err := c.resolveID(agentID)
	if err != nil {
		return StatusResponse{}, err
	}
	endpoint := strings.Replace(agentStatus, "{agent_id}", id, 1)
	return apiclient.Request[StatusResponse](ctx, c.APIClient, apiclient.MethodGet, endpoint, nil, nil)
}

// List returns agents matching req, or {only_active: true, limit: 10} when
// req is nil.
func (c Client) List(ctx context.Context, req *api.AgentListRequest) ([]api.AgentResponse, error) {
	params := api.DefaultListRequest()
	if req != nil {
		params = *req
	}
	return apiclient.Request[[]api.AgentResponse](ctx, c.APIClient, apiclient.MethodGet, agentList, nil, params.QueryParams())
}

func (c Client) resolveID(agentID string) (string, error) {
	var last string
	if c.LastAgentResponse != nil {
		last = c.LastAgentResponse.ID
	}
	return apiclient.ResolveID("Agent", agentID, last)
}
