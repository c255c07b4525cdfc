package inbound

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	goerrors "github.com/goliatone/go-errors"
)

// PathParam returns the decoded value of a route parameter. chi matches on
// the raw path when the request carries escaped separators.
func PathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// PositiveID parses the named route parameter as an id of at least 1.
func PositiveID(r *http.Request, key string) (int64, *goerrors.Error) {
	id, err := strconv.ParseInt(strings.TrimSpace(PathParam(r, key)), 10, 64)
	if err != nil || id < 1 {
		return 0, BadParameter(key, "must be greater than or equal to 1")
	}
	return id, nil
}

// NonBlank returns the trimmed route parameter or a violation when blank.
func NonBlank(r *http.Request, key string) (string, *goerrors.Error) {
	value := strings.TrimSpace(PathParam(r, key))
	if value == "" {
		return "", BadParameter(key, "must not be blank")
	}
	return value, nil
}
