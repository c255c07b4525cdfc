package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestEnvelope_MapsEveryKind(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category goerrors.Category
		code     int
		textCode string
	}{
		{
			name:     "validation",
			err:      NewValidationError("precio", "price must be greater than zero"),
			category: goerrors.CategoryValidation,
			code:     http.StatusBadRequest,
			textCode: ErrorValidationFailed,
		},
		{
			name:     "parameter validation",
			err:      NewParameterValidationError("id", "must be greater than or equal to 1"),
			category: goerrors.CategoryBadInput,
			code:     http.StatusBadRequest,
			textCode: ErrorBadParameter,
		},
		{
			name:     "resource not found",
			err:      NewResourceNotFound("product", "999", &Failure{Kind: FailureNotFound, StatusCode: 404}),
			category: goerrors.CategoryNotFound,
			code:     http.StatusNotFound,
			textCode: ErrorResourceNotFound,
		},
		{
			name:     "communication service unavailable",
			err:      NewCommunicationFailure(&Failure{Kind: FailureServiceUnavailable, StatusCode: 503}),
			category: goerrors.CategoryExternal,
			code:     http.StatusServiceUnavailable,
			textCode: ErrorCommunicationFailure,
		},
		{
			name:     "communication timeout",
			err:      NewCommunicationFailure(&Failure{Kind: FailureCommunication, Timeout: true}),
			category: goerrors.CategoryExternal,
			code:     http.StatusBadGateway,
			textCode: ErrorCommunicationFailure,
		},
		{
			name:     "wrapped domain error",
			err:      fmt.Errorf("handler: %w", NewResourceNotFound("product", "1", nil)),
			category: goerrors.CategoryNotFound,
			code:     http.StatusNotFound,
			textCode: ErrorResourceNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("wiring fault"),
			category: goerrors.CategoryInternal,
			code:     http.StatusInternalServerError,
			textCode: ErrorInternal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			envelope := Envelope(tc.err)
			if envelope == nil {
				t.Fatalf("expected envelope")
			}
			if envelope.Category != tc.category {
				t.Fatalf("expected category %q, got %q", tc.category, envelope.Category)
			}
			if envelope.Code != tc.code {
				t.Fatalf("expected code %d, got %d", tc.code, envelope.Code)
			}
			if envelope.TextCode != tc.textCode {
				t.Fatalf("expected text code %q, got %q", tc.textCode, envelope.TextCode)
			}
		})
	}
}

func TestEnvelope_PreservesRichErrors(t *testing.T) {
	rich := goerrors.New("remote client is required", goerrors.CategoryBadInput)
	rich.Code = 0
	rich.TextCode = ""
	envelope := Envelope(rich)
	if envelope.Code != http.StatusBadRequest || envelope.TextCode != ErrorBadParameter {
		t.Fatalf("expected defaults filled from category, got %d %q", envelope.Code, envelope.TextCode)
	}
	if Envelope(nil) != nil {
		t.Fatalf("expected nil envelope for nil error")
	}
}

func TestKindOf_UnwrapsChains(t *testing.T) {
	failure := &Failure{Kind: FailureServiceUnavailable, Operation: "getProduct", StatusCode: 503}
	err := fmt.Errorf("query: %w", NewCommunicationFailure(failure))

	kind, ok := KindOf(err)
	if !ok || kind != KindCommunicationFailure {
		t.Fatalf("expected communication failure kind, got %q %v", kind, ok)
	}
	if !errors.Is(err, failure) {
		t.Fatalf("expected failure in the chain")
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain errors have no kind")
	}
}

func TestFailure_ErrorMessage(t *testing.T) {
	failure := &Failure{Kind: FailureCommunication, Operation: "getProduct", Timeout: true, Err: errors.New("deadline")}
	if got := failure.Error(); got != "remote: getProduct: communication (timeout): deadline" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(failure, failure.Err) {
		t.Fatalf("expected cause to unwrap")
	}
}
