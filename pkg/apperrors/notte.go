package apperrors

import (
	"errors"
	"net/http"
)

const (
	defaultAuthenticationMsg = "Authentication failed. Please check your API key."
	defaultInvalidRequestMsg = "Invalid request parameters."
	defaultNotFoundMsg       = "Resource not found."
	defaultTimeoutMsg        = "Request timed out."
)

// Root errors for each kind. Every error produced by the constructors below
// descends from exactly one of these, so errors.Is can be used to branch.
var (
	ErrAuthentication Error = New("authentication error").SetKind(KindAuthentication)
	ErrInvalidRequest Error = New("invalid request").SetKind(KindInvalidRequest)
	ErrAPI            Error = New("api error").SetKind(KindAPI)
)

// AuthenticationError returns an error reporting a missing or unusable API key.
func AuthenticationError(msg string) Error {
	if msg == "" {
		msg = defaultAuthenticationMsg
	}
	return ErrAuthentication.New(msg)
}

// InvalidRequestError returns an error for a request rejected before it was sent.
func InvalidRequestError(msg string) Error {
	if msg == "" {
		msg = defaultInvalidRequestMsg
	}
	return ErrInvalidRequest.New(msg)
}

// APIError returns an error for a transport or server failure. A statusCode of
// 0 means no HTTP status was received.
func APIError(msg string, statusCode int, rawResponse any) Error {
	return ErrAPI.New(msg).SetStatusCode(statusCode).SetRawResponse(rawResponse)
}

func NotFoundError(msg string) Error {
	if msg == "" {
		msg = defaultNotFoundMsg
	}
	return APIError(msg, http.StatusNotFound, nil)
}

func TimeoutError(msg string) Error {
	if msg == "" {
		msg = defaultTimeoutMsg
	}
	return APIError(msg, http.StatusRequestTimeout, nil)
}

// KindOf returns the kind of err, or "" when err is not an SDK error.
func KindOf(err error) Kind {
	var appErr Error
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return ""
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var appErr Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return 0
}

func IsAuthentication(err error) bool {
	return KindOf(err) == KindAuthentication
}

func IsInvalidRequest(err error) bool {
	return KindOf(err) == KindInvalidRequest
}

func IsAPIError(err error) bool {
	return KindOf(err) == KindAPI
}

func IsNotFound(err error) bool {
	return IsAPIError(err) && StatusCodeOf(err) == http.StatusNotFound
}

func IsTimeout(err error) bool {
	return IsAPIError(err) && StatusCodeOf(err) == http.StatusRequestTimeout
}
