// Package sessions is the client for the Notte browser-session endpoints.
//
// A Client is a value: operations that observe a session return a new Client
// whose LastSessionResponse holds the reply, and leave the receiver untouched.
// Callers keep the newest copy and may then omit session ids:
//
//	sess, err := sessions.New("", "")
//	sess, err = sess.Start(ctx, api.SessionStartRequest{TimeoutMinutes: 5})
//	sess, err = sess.Close(ctx, "") // closes the session just started
package sessions

import (
	"context"
	"strings"

	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/apiclient"
)

const (
	endpointPrefix = "sessions"

	sessionStart  = "start"
	sessionClose  = "{session_id}/close"
	sessionStatus = "{session_id}"
	sessionList   = ""
)

type Client struct {
	apiclient.APIClient
	// LastSessionResponse is the reply of the most recent Start, Close or
	// Status call, nil before the first one.
	LastSessionResponse *api.SessionResponse
}

// New creates a sessions client. Empty arguments fall back to the
// environment; see apiclient.New.
func New(apiKey, serverURL string) (Client, error) {
	return NewWithConfig(apiclient.Config{APIKey: apiKey, ServerURL: serverURL})
}

// NewWithConfig creates a sessions client from cfg. The endpoint prefix is
// always "sessions".
func NewWithConfig(cfg apiclient.Config) (Client, error) {
	cfg.EndpointPrefix = endpointPrefix
	base, err := apiclient.New(cfg)
	if err != nil {
		return Client{}, err
	}
	return Client{APIClient: base}, nil
}

// UseLocal returns a copy of c pointed at the local server.
func (c Client) UseLocal() Client {
	c.APIClient = c.APIClient.UseLocal()
	return c
}

// UseRemote returns a copy of c pointed at the hosted API.
func (c Client) UseRemote() Client {
	c.APIClient = c.APIClient.UseRemote()
	return c
}

// Start opens a new session. Unset request fields take their defaults and the
// request is validated before anything is sent. On error c is returned as is.
func (c Client) Start(ctx context.Context, req api.SessionStartRequest) (Client, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return c, err
	}
	resp, err := apiclient.Request[api.SessionResponse](ctx, c.APIClient, apiclient.MethodPost, sessionStart, req, nil)
	if err != nil {
		return c, err
	}
	return c.withResponse(resp), nil
}

// Close closes sessionID, or the last session seen by c when sessionID is empty.
func (c Client) Close(ctx context.Context, sessionID string) (Client, error) {
	id, err := c.resolveID(sessionID)
	if err != nil {
		return c, err
	}
	endpoint := strings.Replace(sessionClose, "{session_id}", id, 1)
	resp, err := apiclient.Request[api.SessionResponse](ctx, c.APIClient, apiclient.MethodDelete, endpoint, nil, nil)
	if err != nil {
		return c, err
	}
	return c.withResponse(resp), nil
}

// Status fetches the state of sessionID, or of the last session seen by c.
// Unlike agents.Client.Status, the reply is stored as LastSessionResponse.
func (c Client) Status(ctx context.Context, sessionID string) (Client, error) {
	id, err := c.resolveID(sessionID)
	if err != nil {
		return c, err
	}
	endpoint := strings.Replace(sessionStatus, "{session_id}", id, 1)
	resp, err := apiclient.Request[api.SessionResponse](ctx, c.APIClient, apiclient.MethodGet, endpoint, nil, nil)
	if err != nil {
		return c, err
	}
	return c.withResponse(resp), nil
}

// List returns sessions matching req, or the default listing
// {only_active: true, limit: 10} when req is nil. Stored state is not touched.
func (c Client) List(ctx context.Context, req *api.SessionListRequest) ([]api.SessionResponse, error) {
	params := api.DefaultListRequest()
	if req != nil {
		params = *req
	}
	return apiclient.Request[[]api.SessionResponse](ctx, c.APIClient, apiclient.MethodGet, sessionList, nil, params.QueryParams())
}

func (c Client) resolveID(sessionID string) (string, error) {
	var last string
	if c.LastSessionResponse != nil {
		last = c.LastSessionResponse.ID
	}
	return apiclient.ResolveID("Session", sessionID, last)
}

func (c Client) withResponse(resp api.SessionResponse) Client {
	c.LastSessionResponse = &resp
	return c
}
