package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/preston-bernstein/warlight-go/pkg/warlight"
)

type callStats struct {
	calls           int
	errors          int
	lastOutcome     string
	lastCallLatency time.Duration
}

// Recorder captures per-operation client call metrics in memory and, when
// built by Setup, in prometheus collectors.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*callStats
	prom  *promInstruments
}

var _ warlight.CallRecorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(prom *promInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*callStats),
		prom:  prom,
	}
}

// RecordCall increments counters for an operation and stores the last observed latency.
func (r *Recorder) RecordCall(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	outcome := Outcome(err)
	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &callStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	stats.lastOutcome = outcome
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.prom != nil {
		r.prom.recordCall(operation, outcome, duration)
	}
}

// Calls returns the total calls recorded for an operation.
func (r *Recorder) Calls(operation string) int {
	return r.Snapshot(operation).Calls
}

// Errors returns the failed calls recorded for an operation.
func (r *Recorder) Errors(operation string) int {
	return r.Snapshot(operation).Errors
}

// Snapshot is a copy of the stats for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastOutcome     string
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastOutcome:     stats.lastOutcome,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Outcome classifies a call error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, warlight.ErrGameNotFound):
		return OutcomeNotFound
	case errors.Is(err, warlight.ErrInvalidArgument):
		return OutcomeInvalidArgument
	}
	if _, ok := warlight.AsAPIError(err); ok {
		return OutcomeAPIError
	}
	return OutcomeTransport
}
