package api

// AgentRunRequest is the body of POST agents/run. A zero MaxActions is
// replaced by DefaultMaxNbActions.
type AgentRunRequest struct {
	// The ID of the session to run the agent on.
	SessionID string `json:"session_id" validate:"required,pathSegment"`
	// Free-form agent configuration.
	AgentConfig map[string]any `json:"agent_config" validate:"required"`
	// Maximum number of actions the agent can perform.
	MaxActions int `json:"max_actions"`
}

func (r AgentRunRequest) WithDefaults() AgentRunRequest {
	if r.MaxActions == 0 {
		r.MaxActions = DefaultMaxNbActions
	}
	return r
}

func (r AgentRunRequest) Validate() error {
	return validate("agent run request", r)
}

type AgentResponse struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Data      map[string]any `json:"data,omitempty"`
}

// AgentStatusResponse reports an agent's state. Output is nil until the agent
// has produced a result.
type AgentStatusResponse[T any] struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Output    *T     `json:"output,omitempty"`
}
