package inbound

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

type Violation struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error      string      `json:"error"`
	Message    string      `json:"message"`
	Code       string      `json:"code,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError renders envelope as an ErrorResponse. A nil envelope is
// reported as an internal error.
func WriteError(w http.ResponseWriter, r *http.Request, logger glog.Logger, envelope *goerrors.Error) {
	if envelope == nil {
		envelope = inboundInternal("unexpected empty error", nil)
	}
	status := StatusOf(envelope)
	body := ErrorResponse{
		Error:   http.StatusText(status),
		Message: envelope.Message,
		Code:    envelope.TextCode,
	}
	if envelope.TextCode == core.ErrorBadParameter {
		for _, field := range envelope.AllValidationErrors() {
			body.Violations = append(body.Violations, Violation{
				Param:   field.Field,
				Message: field.Message,
			})
		}
	}

	logger = glog.Ensure(logger)
	args := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"code", envelope.TextCode,
		"request_id", middleware.GetReqID(r.Context()),
		"error", envelope.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("request failed", args...)
	} else {
		logger.WithContext(r.Context()).Warn("request rejected", args...)
	}

	WriteJSON(w, status, body)
}

// StatusOf returns the HTTP status carried by envelope, falling back to
// the status implied by its category.
func StatusOf(envelope *goerrors.Error) int {
	if envelope == nil {
		return http.StatusInternalServerError
	}
	if envelope.Code >= 400 && envelope.Code <= 599 {
		return envelope.Code
	}
	switch envelope.Category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorFor converts any handler error into an envelope.
func ErrorFor(err error) *goerrors.Error {
	return core.Envelope(err)
}
