package apperrors

import (
	"fmt"
	"net/http"
)

// MissingSessionError is returned when a session-gated operation runs without a stored guest session.
// No request is sent to the remote service when this error is returned.
type MissingSessionError struct {
	Operation string
}

// Error implements the error interface.
func (e *MissingSessionError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: no guest session found", e.Operation)
	}
	return "no guest session found"
}

// Is allows for error checking with errors.Is().
func (e *MissingSessionError) Is(target error) bool {
	_, ok := target.(*MissingSessionError)
	return ok
}

// NewMissingSessionError creates a new MissingSessionError for the named operation.
func NewMissingSessionError(operation string) *MissingSessionError {
	return &MissingSessionError{Operation: operation}
}

// RemoteRequestError is returned when the remote service answers with a non-success HTTP status.
type RemoteRequestError struct {
	StatusCode  int    // HTTP status code
	ServiceCode int    // status_code field reported by the service, 0 when absent
	Message     string // status_message field reported by the service, empty when unknown
	Err         error  // body decoding failure, if any
}

// Error implements the error interface.
func (e *RemoteRequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Message)
}

// Is allows for error checking with errors.Is().
func (e *RemoteRequestError) Is(target error) bool {
	_, ok := target.(*RemoteRequestError)
	return ok
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the remote service answered 404.
func (e *RemoteRequestError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError is returned when a response body cannot be parsed or does not match the expected schema.
type DecodeError struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError for the given resource.
func NewDecodeError(resource string, err error) *DecodeError {
	return &DecodeError{Resource: resource, Err: err}
}

// StaleSessionError is returned when the guest session was cleared or replaced
// while a session-gated operation was in flight. The result of that operation is discarded.
//
// Submitted is set when the discarded operation was a write the service had already
// accepted: the rating is recorded under the previous session and must not simply be retried.
type StaleSessionError struct {
	Operation string
	Submitted bool
}

// Error implements the error interface.
func (e *StaleSessionError) Error() string {
	if e.Submitted {
		return fmt.Sprintf("%s: guest session changed after the request was accepted, it may already be recorded under the previous session", e.Operation)
	}
	return fmt.Sprintf("%s: guest session changed while the request was in flight", e.Operation)
}

// Is allows for error checking with errors.Is().
func (e *StaleSessionError) Is(target error) bool {
	_, ok := target.(*StaleSessionError)
	return ok
}

// NewStaleSessionError creates a new StaleSessionError for the named operation.
func NewStaleSessionError(operation string) *StaleSessionError {
	return &StaleSessionError{Operation: operation}
}

// NewStaleSubmissionError creates a StaleSessionError for a write the service already accepted.
func NewStaleSubmissionError(operation string) *StaleSessionError {
	return &StaleSessionError{Operation: operation, Submitted: true}
}
