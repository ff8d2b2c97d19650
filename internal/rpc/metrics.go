package rpc

import (
	"errors"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Call outcomes used as the "outcome" label.
const (
	OutcomeOK                 = "ok"
	OutcomeConfigurationError = "configuration_error"
	OutcomeTransportError     = "transport_error"
	OutcomeMalformedResponse  = "malformed_response"
	OutcomeRPCError           = "rpc_error"
)

// Metrics counts calls by method and outcome and records their latency.
// A nil *Metrics records nothing.
type Metrics struct {
	calls    *prom.CounterVec
	duration *prom.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg when it is not
// nil.
func NewMetrics(reg prom.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "solana",
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "Number of JSON-RPC calls split by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "solana",
			Subsystem: "rpc",
			Name:      "call_duration_seconds",
			Help:      "Latency of JSON-RPC calls split by method.",
			Buckets:   prom.DefBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prom.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(method string, err error, took time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method, Outcome(err)).Inc()
	m.duration.WithLabelValues(method).Observe(took.Seconds())
}

// Outcome classifies a Call error into one of the outcome labels.
func Outcome(err error) string {
	var (
		cfgErr       *ConfigurationError
		transportErr *TransportError
		malformedErr *MalformedResponseError
		rpcErr       *RPCError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &cfgErr):
		return OutcomeConfigurationError
	case errors.As(err, &transportErr):
		return OutcomeTransportError
	case errors.As(err, &malformedErr):
		return OutcomeMalformedResponse
	case errors.As(err, &rpcErr):
		return OutcomeRPCError
	default:
		return OutcomeTransportError
	}
}
