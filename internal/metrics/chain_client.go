package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zentigrity",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	chainRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zentigrity",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ChainClient tracks metrics for RPC calls to the blockchain node.
type ChainClient struct {
	network string
}

// NewChainClient constructs a metrics collector for chain RPC calls.
func NewChainClient(network string) *ChainClient {
	if network == "" {
		network = "unknown"
	}
	return &ChainClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	chainRPCRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	chainRPCRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
