package experience

import "fmt"

// TransportError represents a network failure or a non-success response from
// the remote store.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates an update targeted an identifier the store no
// longer has.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("experience not found: %s", e.ID)
}

// MalformedDataError indicates an upstream record failed date parsing. It is
// a defect of the gateway, surfaced loudly at the projection boundary.
type MalformedDataError struct {
	Field string
	Value string
	Cause error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed data: field %s has invalid value %q: %v", e.Field, e.Value, e.Cause)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a submitted input violated a local rule. It is
// resolved before dispatch and never sent to the remote store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
