package core

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind is the decoder's classification of a transport outcome.
type FailureKind string

const (
	FailureNotFound           FailureKind = "not_found"
	FailureClientRejected     FailureKind = "client_rejected"
	FailureServiceUnavailable FailureKind = "service_unavailable"
	FailureGenericTransport   FailureKind = "generic_transport"
	FailureCommunication      FailureKind = "communication"
	FailureMalformedResponse  FailureKind = "malformed_response"
)

// Failure is a decoded remote failure. It is diagnostic data for the
// orchestration layer and is never surfaced to callers unwrapped.
type Failure struct {
	Kind       FailureKind
	Operation  string
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("remote: ")
	if f.Operation != "" {
		b.WriteString(f.Operation)
		b.WriteString(": ")
	}
	b.WriteString(string(f.Kind))
	if f.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", f.StatusCode)
	}
	if f.Timeout {
		b.WriteString(" (timeout)")
	}
	if f.Err != nil {
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
	}
	return b.String()
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// failureOf extracts the decoded failure from err. Errors that did not pass
// through the decoder are treated as communication faults.
func failureOf(err error) *Failure {
	if err == nil {
		return nil
	}
	var failure *Failure
	if errors.As(err, &failure) && failure != nil {
		return failure
	}
	return &Failure{Kind: FailureCommunication, Err: err}
}
