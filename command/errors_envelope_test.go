package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
)

func TestDeleteProductMessage_ValidateReturnsRichError(t *testing.T) {
	err := (DeleteProductMessage{}).Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", rich.Category)
	}
	if rich.TextCode != core.ErrorBadParameter {
		t.Fatalf("expected %q text code, got %q", core.ErrorBadParameter, rich.TextCode)
	}
	if rich.Code != http.StatusBadRequest {
		t.Fatalf("expected %d code, got %d", http.StatusBadRequest, rich.Code)
	}
	validation := rich.AllValidationErrors()
	if len(validation) == 0 || validation[0].Field != "id" {
		t.Fatalf("expected id validation field, got %#v", validation)
	}
}

func TestDeleteProductCommand_NilServiceReturnsRichError(t *testing.T) {
	var cmd *DeleteProductCommand
	err := cmd.Execute(context.Background(), DeleteProductMessage{ID: 1})
	if err == nil {
		t.Fatalf("expected command dependency error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal category, got %q", rich.Category)
	}
	if rich.TextCode != core.ErrorInternal {
		t.Fatalf("expected %q text code, got %q", core.ErrorInternal, rich.TextCode)
	}
}
