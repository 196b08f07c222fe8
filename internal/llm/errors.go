package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion means the endpoint answered 2xx but returned no usable
// choice.
var ErrEmptyCompletion = errors.New("no completion choices returned")

// UnavailableError wraps network-level failures, including timeouts and
// cancelled contexts.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("model endpoint unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RejectedError is a non-2xx answer from the endpoint.
type RejectedError struct {
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("model endpoint rejected request: status %d: %s", e.Status, e.Body)
}
