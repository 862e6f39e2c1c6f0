package warlight

import (
	"encoding/json"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var wire = jsoniter.ConfigCompatibleWithStandardLibrary

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// envelope is a decoded top-level response object.
type envelope map[string]json.RawMessage

// apiError returns the "error" field text when present.
func (e envelope) apiError() (string, bool) {
	raw, ok := e["error"]
	if !ok {
		return "", false
	}
	var msg string
	if err := wire.Unmarshal(raw, &msg); err != nil {
		return strings.TrimSpace(string(raw)), true
	}
	return msg, true
}

func (e envelope) has(name string) bool {
	_, ok := e[name]
	return ok
}

// field decodes one top-level field into dest.
func (e envelope) field(name string, dest any) error {
	raw, ok := e[name]
	if !ok {
		return &missingFieldError{field: name}
	}
	return wire.Unmarshal(raw, dest)
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return "response missing " + e.field + " field"
}

func snippet(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
