// Package metrics provides Prometheus metrics for the LowCode API SDK.
// It tracks API call counts, latencies, error classes and MCP tool executions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "lowcode_sdk"
)

var (
	// APIRequestsTotal counts LowCode API requests by module, HTTP method and status
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total LowCode API requests by module, method and status",
	}, []string{"module", "method", "status"})

	// APIRequestDuration measures API call latency by module and HTTP method
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_request_duration_seconds",
		Help:      "LowCode API call latency by module and method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"module", "method"})

	// APIErrors counts API errors by error code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "LowCode API errors by module, method and error code",
	}, []string{"module", "method", "error_code"})

	// AuthFailures counts 401 responses
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failures (HTTP 401) by module",
	}, []string{"module"})

	// InvalidJSONResponses counts 2xx responses whose body was not valid JSON
	InvalidJSONResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "invalid_json_responses_total",
		Help:      "Successful responses that could not be decoded as JSON, by module",
	}, []string{"module"})

	// ToolCallsTotal counts MCP tool calls by tool name and status
	ToolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "tool_calls_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// ToolCallDuration measures MCP tool latency distribution
	ToolCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "tool_call_duration_seconds",
		Help:      "MCP tool latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// ToolsInFlight tracks currently executing tool calls
	ToolsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "tool_calls_in_flight",
		Help:      "Number of MCP tool calls currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordAPICall records a LowCode API call
func RecordAPICall(module, method string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(module, method, status).Inc()
	APIRequestDuration.WithLabelValues(module, method).Observe(duration)
	if errorCode != "" {
		APIErrors.WithLabelValues(module, method, errorCode).Inc()
	}
}

// RecordToolCall records a completed MCP tool call with its duration and status
func RecordToolCall(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(duration)
}
