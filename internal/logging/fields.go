package logging

import (
	"log/slog"
	"time"
)

// Field keys shared by the client and the CLI.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldOperation  = "operation"
	FieldRequestID  = "request_id"
	FieldEndpoint   = "endpoint"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldGameID     = "game_id"
	FieldSource     = "source"
	FieldCount      = "count"
	FieldPath       = "path"
	FieldError      = "error"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

// CallArgs returns the key/value pairs logged for one API round trip.
// A zero status means no response was received.
func CallArgs(op, requestID, endpoint string, status int, elapsed time.Duration) []any {
	args := []any{
		FieldOperation, op,
		FieldRequestID, requestID,
		FieldEndpoint, endpoint,
	}
	if status != 0 {
		args = append(args, FieldStatusCode, status)
	}
	return append(args, FieldDurationMS, elapsed.Milliseconds())
}
