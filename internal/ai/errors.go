package ai

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrorClass classifies a failed narrator call. The failover policy keys off
// these classes, so every error leaving this package must carry one.
type ErrorClass string

const (
	ClassTimeout      ErrorClass = "transport_timeout"
	ClassUnreachable  ErrorClass = "transport_unreachable"
	ClassDenied       ErrorClass = "provider_denied"
	ClassMalformed    ErrorClass = "malformed_output"
	ClassUnclassified ErrorClass = "unclassified"
)

// ProviderError wraps a failure from one narrator backend.
type ProviderError struct {
	Provider string
	Class    ErrorClass
	Err      error

	// Raw preserves the offending model output for malformed_output errors.
	Raw string
}

func (e *ProviderError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("%s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Class, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Classify returns the error class of err, or ClassUnclassified for errors
// that did not originate from a provider gateway.
func Classify(err error) ErrorClass {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Class
	}
	return ClassUnclassified
}

// classifyTransport maps an http.Client error onto the transport taxonomy.
func classifyTransport(provider string, err error) *ProviderError {
	class := ClassUnreachable
	if errors.Is(err, context.DeadlineExceeded) {
		class = ClassTimeout
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		class = ClassTimeout
	}
	return &ProviderError{Provider: provider, Class: class, Err: err}
}
