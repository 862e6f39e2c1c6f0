package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "warlight_client"

// TelemetryConfig controls whether prometheus collectors are registered.
type TelemetryConfig struct {
	Enabled bool
}

// Setup builds a Recorder. When enabled, calls are also exported through
// collectors on the returned registry; otherwise the registry is nil.
func Setup(cfg TelemetryConfig) (*Recorder, *prometheus.Registry, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, nil
	}

	reg := prometheus.NewRegistry()
	inst, err := newPromInstruments(reg)
	if err != nil {
		return nil, nil, err
	}
	return newRecorder(inst), reg, nil
}

// WriteTextfile writes the registry in the node exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" || g == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}

type promInstruments struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newPromInstruments(reg prometheus.Registerer) (*promInstruments, error) {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calls_total",
		Help:      "Warlight API calls by operation and outcome.",
	}, []string{AttrOperation, AttrOutcome})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "call_duration_seconds",
		Help:      "Warlight API call latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{AttrOperation})

	for _, c := range []prometheus.Collector{calls, duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return &promInstruments{calls: calls, duration: duration}, nil
}

func (p *promInstruments) recordCall(operation, outcome string, d time.Duration) {
	if p == nil {
		return
	}
	p.calls.WithLabelValues(operation, outcome).Inc()
	// Calls rejected before reaching the wire have no latency worth observing.
	if outcome != OutcomeInvalidArgument {
		p.duration.WithLabelValues(operation).Observe(d.Seconds())
	}
}
