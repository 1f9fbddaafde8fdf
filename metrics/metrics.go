// Package metrics instruments tool dispatch with Prometheus counters.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	toolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lark_mcp_tool_calls_total",
			Help: "Tool invocations by tool name and outcome.",
		},
		[]string{"tool", "outcome"},
	)
	toolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lark_mcp_tool_duration_seconds",
			Help:    "Tool invocation latency, remote call included.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

// Instrument wraps a tool handler so every invocation is counted and timed.
func Instrument(tool string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, request)
		toolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		toolCalls.WithLabelValues(tool, outcome).Inc()
		return result, err
	}
}

// Serve exposes /metrics on addr. It blocks, so callers run it in a
// goroutine; stdio tool traffic is unaffected.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
