package agents

import (
	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	"github.com/mitchellh/mapstructure"
)

// DecodeOutput converts the free-form output of resp into T, matching map keys
// against `json` struct tags. It fails when the agent has produced no output.
func DecodeOutput[T any](resp StatusResponse) (api.AgentStatusResponse[T], error) {
	typed := api.AgentStatusResponse[T]{
		ID:        resp.ID,
		SessionID: resp.SessionID,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
	if resp.Output == nil {
		return typed, apperrors.InvalidRequestError("agent " + resp.ID + " has no output")
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return typed, apperrors.InvalidRequestError("unable to decode agent output").Err(err)
	}
	if err := decoder.Decode(*resp.Output); err != nil {
		return typed, apperrors.InvalidRequestError("unable to decode agent output").Err(err).SetExpandError(true)
	}
	typed.Output = &out
	return typed, nil
}
