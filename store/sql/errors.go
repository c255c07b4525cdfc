package sqlstore

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
)

const (
	ResourceProduct  = "product"
	ResourceCategory = "category"
)

func notFoundError(resource string, key any) error {
	return goerrors.New(fmt.Sprintf("%s not found: %v", resource, key), goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(core.ErrorResourceNotFound).
		WithMetadata(map[string]any{
			"resource": resource,
			"key":      fmt.Sprint(key),
		})
}

func invalidInputError(field string, message string) error {
	return goerrors.NewValidation("invalid catalog input", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).WithCode(http.StatusBadRequest).
		WithTextCode(core.ErrorValidationFailed)
}

func storeError(message string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "sqlstore: "+message).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.ErrorInternal)
}

// IsNotFound reports whether err is a missing product or category.
func IsNotFound(err error) bool {
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.Category == goerrors.CategoryNotFound
}
