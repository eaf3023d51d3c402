package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"routing/internal/adapters/out/metrics"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.SequencingObserver   = (*metrics.Collector)(nil)
	_ ports.ZoneCoverageObserver = (*metrics.Collector)(nil)
	_ ports.PersistenceObserver  = (*metrics.Collector)(nil)
)

func TestCollector_ObserveSequencing(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveSequencing("plan", 3*time.Millisecond, route.Plan{Feasible: true})
	c.ObserveSequencing("plan", 5*time.Millisecond, route.Plan{BudgetExceeded: true, Feasible: true})
	c.ObserveSequencing("apply", time.Millisecond, route.Plan{
		Violation: &route.Violation{Reason: route.PrecedenceViolated},
	})

	body := scrape(t, c)
	assert.Contains(t, body, `routing_sequencing_duration_seconds_count{operation="plan"} 2`)
	assert.Contains(t, body, `routing_sequencing_budget_exceeded_total{operation="plan"} 1`)
	assert.Contains(t, body, `routing_sequencing_infeasible_total{operation="apply",reason="precedence_violated"} 1`)
	assert.NotContains(t, body, `routing_sequencing_infeasible_total{operation="plan"`)
}

func TestCollector_ZoneCoverage(t *testing.T) {
	c := metrics.NewCollector()
	first, second := kernel.NewUUID(), kernel.NewUUID()

	c.ObserveZoneCoverage(first, 0, 3)
	c.ObserveZoneCoverage(second, 1, 0)
	c.ObserveUncovered(2)

	count, err := testutil.GatherAndCount(c.Registry(), "routing_zone_couriers")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, scrape(t, c), "routing_zone_uncovered_couriers 2")

	c.ResetZoneCoverage()

	count, err = testutil.GatherAndCount(c.Registry(), "routing_zone_couriers")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCollector_ObserveCommittedAggregates(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveCommittedAggregates("courier", 1)
	c.ObserveCommittedAggregates("courier", 2)

	assert.Contains(t, scrape(t, c), `routing_committed_aggregates_total{kind="courier"} 3`)
}

func TestCollector_ObserveHTTPRequest(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveHTTPRequest(http.MethodPost, "/api/v1/routes/plan", http.StatusOK, 10*time.Millisecond)

	assert.Contains(t, scrape(t, c),
		`http_requests_total{method="POST",path="/api/v1/routes/plan",status="200"} 1`)
}

func scrape(t *testing.T, c *metrics.Collector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
