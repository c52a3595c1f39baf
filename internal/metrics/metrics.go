package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/airweave-ai/airweave-go/internal/version"
)

// NewBuildInfoCollector returns a collector that exports metrics about current
// version information.
func NewBuildInfoCollector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "airweave_build_info",
			Help: "airweave build metadata exposed as labels with a constant value of 1.",
			ConstLabels: prometheus.Labels{
				"version":    version.Get().Version,
				"git_commit": version.Get().GitCommit,
				"build_date": version.Get().BuildDate,
				"go_version": version.Get().GoVersion,
				"platform":   version.Get().Platform,
			},
		},
		func() float64 { return 1 },
	)
}

// ToolCalls counts MCP tool invocations by tool name and outcome.
var ToolCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "airweave_mcp_tool_calls_total",
		Help: "Total MCP tool calls handled, by tool and outcome.",
	},
	[]string{"tool", "outcome"},
)

// APIRequests counts outbound Airweave API requests by HTTP method and outcome.
var APIRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "airweave_api_requests_total",
		Help: "Total Airweave API requests issued, by HTTP method and outcome.",
	},
	[]string{"method", "outcome"},
)

// Register registers all collectors on the given registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		NewBuildInfoCollector(),
		ToolCalls,
		APIRequests,
	)
}
