package remote

import (
	"net/http"
	"unicode/utf8"

	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/transport"
)

const maxBodyExcerpt = 512

// Failure is the decoder's output type.
type Failure = core.Failure

// Outcome is the raw result of one exchange as seen by the decoder.
type Outcome struct {
	Operation  string
	StatusCode int
	Body       []byte
	Err        error
}

// Decode classifies an outcome. It returns nil for a 2xx status with no
// transport error.
func Decode(outcome Outcome) *Failure {
	if outcome.Err != nil {
		return &Failure{
			Kind:       core.FailureCommunication,
			Operation:  outcome.Operation,
			StatusCode: outcome.StatusCode,
			Timeout:    transport.IsTimeout(outcome.Err),
			Err:        outcome.Err,
		}
	}
	if outcome.StatusCode >= 200 && outcome.StatusCode < 300 {
		return nil
	}
	return &Failure{
		Kind:       statusKind(outcome.StatusCode),
		Operation:  outcome.Operation,
		StatusCode: outcome.StatusCode,
		Body:       excerpt(outcome.Body),
	}
}

func statusKind(status int) core.FailureKind {
	switch status {
	case http.StatusNotFound:
		return core.FailureNotFound
	case http.StatusBadRequest, http.StatusConflict:
		return core.FailureClientRejected
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return core.FailureServiceUnavailable
	default:
		return core.FailureGenericTransport
	}
}

func excerpt(body []byte) string {
	if len(body) <= maxBodyExcerpt {
		return string(body)
	}
	cut := body[:maxBodyExcerpt]
	// Drop only a rune split by the cut.
	for i := len(cut) - 1; i >= 0 && i >= len(cut)-utf8.UTFMax; i-- {
		if utf8.RuneStart(cut[i]) {
			if !utf8.FullRune(cut[i:]) {
				cut = cut[:i]
			}
			break
		}
	}
	return string(cut) + "..."
}
