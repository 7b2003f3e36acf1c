package remote

import "fmt"

// TransportError indicates the endpoint could not be reached or answered
// with a non-2xx status.
type TransportError struct {
	Status int // zero when the request never produced a response
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError indicates the endpoint answered but the payload violates the
// getData contract: reported failure, missing data, or undecodable JSON.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("format error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("format error: %s", e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
