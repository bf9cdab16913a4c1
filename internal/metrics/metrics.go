// Package metrics keeps per-run Prometheus metrics. A run is a one-shot
// process, so instead of serving /metrics the registry is written to a
// node-exporter textfile at exit.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stockdata"

// Recorder holds the metrics of one run. A nil *Recorder is a no-op.
type Recorder struct {
	reg      *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	commands *prometheus.CounterVec
	records  prometheus.Gauge
	lastRun  prometheus.Gauge
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Provider HTTP requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Provider HTTP request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"endpoint"}),
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_runs_total",
			Help:      "Command runs by command and result.",
		}, []string{"command", "result"}),
		records: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_records",
			Help:      "Rows written by the last history download.",
		}),
		lastRun: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last command finished.",
		}),
	}
}

// ObserveRequest matches yahoo.ObserveFunc.
func (r *Recorder) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(endpoint, outcome).Inc()
	r.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// CommandDone records a finished command.
func (r *Recorder) CommandDone(command, result string) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(command, result).Inc()
	r.lastRun.SetToCurrentTime()
}

// SetRecords records how many rows the history download wrote.
func (r *Recorder) SetRecords(n int) {
	if r == nil {
		return
	}
	r.records.Set(float64(n))
}

// WriteTextfile writes the registry in text exposition format, atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
