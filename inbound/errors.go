package inbound

import (
	"net/http"

	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
)

func inboundError(
	message string,
	category goerrors.Category,
	code int,
	textCode string,
	metadata map[string]any,
) *goerrors.Error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(textCode)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func inboundWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	textCode string,
	metadata map[string]any,
) *goerrors.Error {
	if source == nil {
		return inboundError(message, category, code, textCode, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(textCode)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// BadParameter reports a rejected path or body parameter with a single
// violation entry.
func BadParameter(param string, message string) *goerrors.Error {
	err := goerrors.NewValidation("invalid request parameter", goerrors.FieldError{
		Field:   param,
		Message: message,
	})
	err.Category = goerrors.CategoryBadInput
	return err.WithCode(http.StatusBadRequest).WithTextCode(core.ErrorBadParameter)
}

func inboundMalformedBody(source error) *goerrors.Error {
	return inboundWrapError(
		source,
		goerrors.CategoryBadInput,
		"malformed request body",
		http.StatusBadRequest,
		core.ErrorBadParameter,
		nil,
	)
}

func inboundInternal(message string, metadata map[string]any) *goerrors.Error {
	return inboundError(
		message,
		goerrors.CategoryInternal,
		http.StatusInternalServerError,
		core.ErrorInternal,
		metadata,
	)
}
