package metrics

// Common metric label keys to keep telemetry consistent/searchable.
const (
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

// Call outcomes used as label values.
const (
	OutcomeOK              = "ok"
	OutcomeAPIError        = "api_error"
	OutcomeNotFound        = "not_found"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeTransport       = "transport"
)
