package compiler

import (
	"errors"
	"fmt"
)

// TransportError is a network level failure or a non-200 response.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("compile service returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("compile request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is a response whose shape the client does not understand.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected compile response: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// Classify names the error class of a compile failure for logs and the
// status line.
func Classify(err error) string {
	var te *TransportError
	var pe *ProtocolError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &te):
		return "transport"
	case errors.As(err, &pe):
		return "protocol"
	default:
		return "unknown"
	}
}
