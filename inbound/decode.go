package inbound

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const DefaultMaxBodyBytes int64 = 1 << 20

// DecodeJSON reads a single JSON document from r into dst. Empty, oversized
// or malformed bodies are reported as bad parameters.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any, limit int64) *goerrors.Error {
	if r.Body == nil {
		return inboundMalformedBody(errors.New("request body is required"))
	}
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return inboundMalformedBody(errors.New("request body is required"))
		}
		return inboundMalformedBody(err)
	}
	if decoder.More() {
		return inboundMalformedBody(errors.New("request body must contain a single JSON document"))
	}
	return nil
}
