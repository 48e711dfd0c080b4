// Package apperrors provides the error values returned by every Notte SDK call.
// Errors are immutable and chainable: each modifier returns a copy, and the
// result stays compatible with errors.Is / errors.As against its ancestors.
// Every error carries a Kind, an optional HTTP status code and, for failures
// reported by the server, the raw response payload.
package apperrors

// Kind classifies an error so that callers can decide on remediation.
type Kind string

const (
	// KindAuthentication means no usable API key could be resolved.
	KindAuthentication Kind = "AuthenticationError"
	// KindInvalidRequest means the request was rejected locally and never sent.
	KindInvalidRequest Kind = "InvalidRequestError"
	// KindAPI means the transport or the server reported a failure.
	KindAPI Kind = "NotteAPIError"
)

// Error defines the interface for SDK errors. All modifier methods return a new
// Error and leave the receiver untouched.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // creates a new error using current as template
	Msg(msg string) Error                  // creates a new error with message and wraps original
	MsgErr(msg string, err ...error) Error // creates error with message and wraps extra errors
	Err(err ...error) Error                // attaches additional errors to current error
	SetExpandError(bool) Error             // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error               // sets HTTP status code for the error
	StatusCode() int                       // returns the status code, 0 when undefined
	SetKind(Kind) Error                    // sets the error kind
	Kind() Kind                            // returns the error kind
	SetRawResponse(any) Error              // attaches the raw server payload
	RawResponse() any                      // returns the raw server payload, if any
	Prefix(string) Error                   // adds a prefix to the error message
	Suffix(string) Error                   // adds a suffix to the error message
	ErrorAll() string                      // returns full message including wrapped errors
	UnwrapAll() []error                    // returns all wrapped errors
}
