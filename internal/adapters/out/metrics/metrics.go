// Package metrics exposes engine and HTTP telemetry as Prometheus collectors
// on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "routing"

// Collector implements ports.SequencingObserver, ports.ZoneCoverageObserver
// and ports.PersistenceObserver.
type Collector struct {
	registry *prometheus.Registry

	sequencingDuration *prometheus.HistogramVec
	sequencedStops     *prometheus.HistogramVec
	budgetExceeded     *prometheus.CounterVec
	infeasiblePlans    *prometheus.CounterVec
	zoneCouriers       *prometheus.GaugeVec
	uncoveredCouriers  prometheus.Gauge
	committed          *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector registers every collector, plus the Go and process
// collectors, on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sequencingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sequencing_duration_seconds",
			Help:      "Wall-clock time of one sequencing run.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		sequencedStops: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sequenced_stops",
			Help:      "Number of stops per sequencing run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		}, []string{"operation"}),
		budgetExceeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequencing_budget_exceeded_total",
			Help:      "Sequencing runs cut short by the iteration or time budget.",
		}, []string{"operation"}),
		infeasiblePlans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequencing_infeasible_total",
			Help:      "Plans returned with a violation, by reason.",
		}, []string{"operation", "reason"}),
		zoneCouriers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zone_couriers",
			Help:      "Couriers inside each zone at the last coverage scan.",
		}, []string{"zone_id", "zone_index"}),
		uncoveredCouriers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zone_uncovered_couriers",
			Help:      "Candidate couriers outside every zone at the last coverage scan.",
		}),
		committed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "committed_aggregates_total",
			Help:      "Distinct aggregates written by committed transactions, by kind.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	c.registry.MustRegister(
		c.sequencingDuration,
		c.sequencedStops,
		c.budgetExceeded,
		c.infeasiblePlans,
		c.zoneCouriers,
		c.uncoveredCouriers,
		c.committed,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) ObserveSequencing(operation string, elapsed time.Duration, plan route.Plan) {
	c.sequencingDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	c.sequencedStops.WithLabelValues(operation).Observe(float64(plan.Sequence.Len()))
	if plan.BudgetExceeded {
		c.budgetExceeded.WithLabelValues(operation).Inc()
	}
	if !plan.Feasible && plan.Violation != nil {
		c.infeasiblePlans.WithLabelValues(operation, plan.Violation.Reason.String()).Inc()
	}
}

func (c *Collector) ObserveZoneCoverage(zoneID kernel.UUID, index int, couriers int) {
	c.zoneCouriers.WithLabelValues(zoneID.String(), strconv.Itoa(index)).Set(float64(couriers))
}

func (c *Collector) ObserveUncovered(couriers int) {
	c.uncoveredCouriers.Set(float64(couriers))
}

// ResetZoneCoverage drops the per-zone series, so a new zone plan does not
// leave stale zones behind.
func (c *Collector) ResetZoneCoverage() {
	c.zoneCouriers.Reset()
}

func (c *Collector) ObserveCommittedAggregates(kind string, count int) {
	c.committed.WithLabelValues(kind).Add(float64(count))
}

// ObserveHTTPRequest records one served request. path is the route
// template, not the raw URL, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	c.httpRequests.WithLabelValues(method, path, code).Inc()
	c.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry is exposed for tests and for callers adding their own collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
