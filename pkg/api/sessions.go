package api

import "github.com/Gautam-Hegde/notte-go/pkg/types"

// SessionStartRequest is the body of POST sessions/start. Zero values of
// TimeoutMinutes and MaxSteps are replaced by their defaults.
type SessionStartRequest struct {
	// Session timeout in minutes. Cannot exceed the global timeout.
	TimeoutMinutes int `json:"timeout_minutes" validate:"gt=0,lte=30"`
	// Whether to include a screenshot in the response.
	Screenshot *bool `json:"screenshot,omitempty"`
	// Maximum number of steps in the trajectory.
	MaxSteps int `json:"max_steps" validate:"gt=0"`
	// Proxies to use for the session. The server picks defaults when empty.
	Proxies []string `json:"proxies,omitempty"`
}

// WithDefaults returns a copy of r with unset fields filled in.
func (r SessionStartRequest) WithDefaults() SessionStartRequest {
	if r.TimeoutMinutes == 0 {
		r.TimeoutMinutes = DefaultOperationSessionTimeoutInMinutes
	}
	if r.MaxSteps == 0 {
		r.MaxSteps = DefaultMaxNbSteps
	}
	return r
}

// Validate checks r as it would be sent. Call WithDefaults first.
func (r SessionStartRequest) Validate() error {
	return validate("session start request", r)
}

// SessionRequest extends SessionStartRequest for operations that may reuse an
// existing session.
type SessionRequest struct {
	SessionStartRequest
	// The ID of the session. A new session is created when null.
	SessionID types.NullableString `json:"session_id"`
	// If true, the session is not closed after the operation completes.
	KeepAlive bool `json:"keep_alive"`
}

type SessionResponse struct {
	ID        string               `json:"id"`
	Status    string               `json:"status"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
	ExpiresAt types.NullableString `json:"expires_at"`
	Data      map[string]any       `json:"data,omitempty"`
}
