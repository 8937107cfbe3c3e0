package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aplookup_tool_calls_total",
			Help: "Total number of tool calls",
		},
		[]string{"tool", "status"},
	)

	toolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aplookup_tool_call_duration_seconds",
			Help:    "Tool call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"tool"},
	)

	resourceReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aplookup_resource_reads_total",
			Help: "Total number of resource reads",
		},
		[]string{"uri", "status"},
	)
)

// RecordToolCall records a tool call outcome
func RecordToolCall(tool, status string, duration time.Duration) {
	toolCallsTotal.WithLabelValues(tool, status).Inc()
	toolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordResourceRead records a resource read outcome
func RecordResourceRead(uri, status string) {
	resourceReadsTotal.WithLabelValues(uri, status).Inc()
}
