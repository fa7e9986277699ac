package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "goblinden"

// Metrics holds the den server's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	rpcs        *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	turn        prometheus.Gauge
	dens        prometheus.Gauge
	densPaid    prometheus.Counter
	payFailures prometheus.Counter
	builds      *prometheus.CounterVec
	spent       *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on a private registry,
// together with the Go runtime and process collectors.
//
// Postcondition: Returns a non-nil Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rpc_total",
			Help: "Unary RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "rpc_duration_seconds",
			Help:    "Unary RPC handling time.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"method"}),
		turn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "turn",
			Help: "Current turn number.",
		}),
		dens: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "dens",
			Help: "Dens hosted by this server.",
		}),
		densPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "dens_paid_total",
			Help: "Per-turn income payouts credited.",
		}),
		payFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "den_payout_failures_total",
			Help: "Per-turn income payouts that could not be persisted.",
		}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "buildings_built_total",
			Help: "Buildings constructed, by building ID.",
		}, []string{"building"}),
		spent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "resources_spent_total",
			Help: "Resources debited from den stockpiles, by resource.",
		}, []string{"resource"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcs, m.rpcDuration, m.turn, m.dens, m.densPaid, m.payFailures, m.builds, m.spent,
	)
	return m
}

// Gatherer exposes the registry for handlers and tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// UnaryServerInterceptor counts and times every unary RPC.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if m != nil {
			m.rpcDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
			m.rpcs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		}
		return resp, err
	}
}

// TurnEnded records a turn advance.
func (m *Metrics) TurnEnded(turn int64, paid, failed int) {
	if m == nil {
		return
	}
	m.turn.Set(float64(turn))
	m.densPaid.Add(float64(paid))
	m.payFailures.Add(float64(failed))
}

// SetDens records the number of hosted dens.
func (m *Metrics) SetDens(n int) {
	if m == nil {
		return
	}
	m.dens.Set(float64(n))
}

// Built records a construction.
func (m *Metrics) Built(buildingID string) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(buildingID).Inc()
}

// Spent records resources debited from a den.
func (m *Metrics) Spent(gold, food int) {
	if m == nil {
		return
	}
	if gold > 0 {
		m.spent.WithLabelValues("gold").Add(float64(gold))
	}
	if food > 0 {
		m.spent.WithLabelValues("food").Add(float64(food))
	}
}
