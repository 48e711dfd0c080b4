// Package api declares the request and response shapes of the Notte API,
// together with their defaults and local validation rules.
package api

import (
	"strconv"

	"github.com/Gautam-Hegde/notte-go/internal/common/schemavalidator"
	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
)

const (
	DefaultOperationSessionTimeoutInMinutes = 3
	DefaultGlobalSessionTimeoutInMinutes    = 30
	DefaultMaxNbActions                     = 100
	DefaultMaxNbSteps                       = 20
	DefaultListLimit                        = 10
)

// ListRequest holds the query parameters of the list endpoints.
type ListRequest struct {
	OnlyActive bool `json:"only_active"`
	Limit      int  `json:"limit"`
}

type SessionListRequest = ListRequest
type AgentListRequest = ListRequest

// DefaultListRequest returns {only_active: true, limit: 10}.
func DefaultListRequest() ListRequest {
	return ListRequest{OnlyActive: true, Limit: DefaultListLimit}
}

// QueryParams encodes the request as URL query parameters.
func (r ListRequest) QueryParams() map[string]string {
	return map[string]string{
		"only_active": strconv.FormatBool(r.OnlyActive),
		"limit":       strconv.Itoa(r.Limit),
	}
}

func validate(what string, s any) error {
	if err := schemavalidator.Struct(s); err != nil {
		return apperrors.InvalidRequestError("invalid "+what).
			Err(err).
			SetExpandError(true)
	}
	return nil
}
