package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorValidationFailed     = "CATALOG_VALIDATION_FAILED"
	ErrorBadParameter         = "CATALOG_BAD_PARAMETER"
	ErrorResourceNotFound     = "CATALOG_RESOURCE_NOT_FOUND"
	ErrorCommunicationFailure = "CATALOG_COMMUNICATION_FAILURE"
	ErrorInternal             = "CATALOG_INTERNAL_ERROR"

	// Transport-level codes, set by the transport package before decoding.
	ErrorTransportTimeout = "CATALOG_TRANSPORT_TIMEOUT"
	ErrorTransportFailure = "CATALOG_TRANSPORT_FAILURE"
)

// ErrorKind is the closed set of caller-facing failures.
type ErrorKind string

const (
	KindValidation           ErrorKind = "validation"
	KindParameterValidation  ErrorKind = "parameter_validation"
	KindResourceNotFound     ErrorKind = "resource_not_found"
	KindCommunicationFailure ErrorKind = "communication_failure"
)

type Error struct {
	Kind    ErrorKind
	Message string
	// Field names the offending input for validation kinds.
	Field string
	// Resource and Key identify the missing entity for KindResourceNotFound.
	Resource string
	Key      string
	Failure  *Failure
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Failure != nil {
		return e.Message + ": " + e.Failure.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil || e.Failure == nil {
		return nil
	}
	return e.Failure
}

func NewValidationError(field string, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Field:   strings.TrimSpace(field),
		Message: strings.TrimSpace(message),
	}
}

func NewParameterValidationError(param string, message string) *Error {
	return &Error{
		Kind:    KindParameterValidation,
		Field:   strings.TrimSpace(param),
		Message: strings.TrimSpace(message),
	}
}

func NewResourceNotFound(resource string, key string, failure *Failure) *Error {
	return &Error{
		Kind:     KindResourceNotFound,
		Resource: resource,
		Key:      key,
		Message:  fmt.Sprintf("%s not found with id: %s", resource, key),
		Failure:  failure,
	}
}

func NewCommunicationFailure(failure *Failure) *Error {
	return &Error{
		Kind:    KindCommunicationFailure,
		Message: "communication error with data service",
		Failure: failure,
	}
}

func KindOf(err error) (ErrorKind, bool) {
	var domainErr *Error
	if !errors.As(err, &domainErr) || domainErr == nil {
		return "", false
	}
	return domainErr.Kind, true
}

func IsKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}

// Envelope converts any error reaching the boundary into a go-errors envelope
// with a stable HTTP status and text code.
func Envelope(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr != nil {
		return domainEnvelope(domainErr)
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return ensureEnvelope(rich)
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "An unexpected error occurred").
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorInternal)
}

func domainEnvelope(err *Error) *goerrors.Error {
	switch err.Kind {
	case KindValidation:
		return goerrors.NewValidation(err.Message, goerrors.FieldError{
			Field:   err.Field,
			Message: err.Message,
		}).
			WithCode(http.StatusBadRequest).
			WithTextCode(ErrorValidationFailed)
	case KindParameterValidation:
		envelope := goerrors.NewValidation(err.Message, goerrors.FieldError{
			Field:   err.Field,
			Message: err.Message,
		}).
			WithCode(http.StatusBadRequest).
			WithTextCode(ErrorBadParameter)
		envelope.Category = goerrors.CategoryBadInput
		return envelope
	case KindResourceNotFound:
		return goerrors.New(err.Message, goerrors.CategoryNotFound).
			WithCode(http.StatusNotFound).
			WithTextCode(ErrorResourceNotFound).
			WithMetadata(map[string]any{"resource": err.Resource, "key": err.Key})
	case KindCommunicationFailure:
		envelope := goerrors.New(err.Message, goerrors.CategoryExternal).
			WithCode(communicationStatus(err.Failure)).
			WithTextCode(ErrorCommunicationFailure)
		if err.Failure != nil {
			envelope.WithMetadata(map[string]any{
				"failure":     string(err.Failure.Kind),
				"operation":   err.Failure.Operation,
				"status_code": err.Failure.StatusCode,
				"timeout":     err.Failure.Timeout,
			})
		}
		return envelope
	default:
		return goerrors.New(err.Error(), goerrors.CategoryInternal).
			WithCode(http.StatusInternalServerError).
			WithTextCode(ErrorInternal)
	}
}

func communicationStatus(failure *Failure) int {
	if failure != nil && failure.Kind == FailureServiceUnavailable {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func ensureEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = categoryHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = categoryTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func categoryTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryValidation:
		return ErrorValidationFailed
	case goerrors.CategoryBadInput:
		return ErrorBadParameter
	case goerrors.CategoryNotFound:
		return ErrorResourceNotFound
	case goerrors.CategoryExternal:
		return ErrorCommunicationFailure
	default:
		return ErrorInternal
	}
}

func categoryHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
