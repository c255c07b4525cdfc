package api

import (
	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
)

// parameterError turns a message Validate failure into the domain
// parameter violation so it renders like any other rejected parameter.
func parameterError(err error, fallbackField string) error {
	if err == nil {
		return nil
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		if fields := rich.AllValidationErrors(); len(fields) > 0 {
			return core.NewParameterValidationError(fields[0].Field, fields[0].Message)
		}
	}
	return core.NewParameterValidationError(fallbackField, err.Error())
}
