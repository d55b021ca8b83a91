package coach

import (
	"errors"
	"fmt"
)

// UnavailableMessage is the uniform user-facing text for any failed
// gateway call; the caller never sees transport detail.
const UnavailableMessage = "This feature is unavailable right now. Please try again."

// TransportError wraps a network or service failure reaching the
// generation service.
type TransportError struct {
	Feature string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("coach: %s: transport failure: %v", e.Feature, e.Err)
}
func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError wraps a malformed or schema-non-conforming response.
type ResponseError struct {
	Feature string
	Err     error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("coach: %s: bad response: %v", e.Feature, e.Err)
}
func (e *ResponseError) Unwrap() error { return e.Err }

func transportErr(feature string, err error) error {
	return &TransportError{Feature: feature, Err: err}
}

func responseErr(feature string, err error) error {
	return &ResponseError{Feature: feature, Err: err}
}

func missingField(feature, field string) error {
	return responseErr(feature, fmt.Errorf("missing required field %q", field))
}

// IsGatewayError reports whether err came from the gateway boundary, so
// handlers can map it to UnavailableMessage.
func IsGatewayError(err error) bool {
	var te *TransportError
	var re *ResponseError
	return errors.As(err, &te) || errors.As(err, &re)
}
