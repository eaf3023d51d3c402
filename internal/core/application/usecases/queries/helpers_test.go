package queries_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSequencingObserver struct {
	mock.Mock
}

func (m *MockSequencingObserver) ObserveSequencing(operation string, elapsed time.Duration, plan route.Plan) {
	m.Called(operation, elapsed, plan)
}

type MockCourierReader struct {
	mock.Mock
}

func (m *MockCourierReader) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

func (m *MockCourierReader) FindInBoundingBox(ctx context.Context, box kernel.BoundingBox) ([]*courier.Courier, error) {
	args := m.Called(ctx, box)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

// syncBuffer collects log output from handlers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger() (*slog.Logger, *syncBuffer) {
	out := &syncBuffer{}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})), out
}

func at(lat, lon float64) kernel.Coordinate { return kernel.Coordinate{Lat: lat, Lon: lon} }

func clock(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func newSequencer(t *testing.T, speedKmh float64, budget services.Budget) *services.Sequencer {
	t.Helper()
	checker, err := services.NewFeasibilityChecker(speedKmh)
	require.NoError(t, err)
	s, err := services.NewSequencer(checker, budget)
	require.NoError(t, err)
	return s
}

func newStop(t *testing.T, loc kernel.Coordinate, kind route.Kind, opts ...route.StopOption) route.Stop {
	t.Helper()
	s, err := route.NewStop(kernel.NewUUID(), loc, kind, opts...)
	require.NoError(t, err)
	return s
}

// pickupDeliveryStops builds [Pickup@(0,0), Delivery@(0,1), Pickup@(1,1) 09:00-09:30, Delivery@(1,0)].
// Starting at (0,0) at 08:00 it is feasible at 300 km/h and not at 30 km/h.
func pickupDeliveryStops(t *testing.T) []route.Stop {
	t.Helper()
	w, err := kernel.NewTimeWindow(clock(9, 0), clock(9, 30))
	require.NoError(t, err)

	p1 := newStop(t, at(0, 0), route.Pickup)
	d1 := newStop(t, at(0, 1), route.Delivery, route.WithPickup(p1.ID()))
	p2 := newStop(t, at(1, 1), route.Pickup, route.WithTimeWindow(w))
	d2 := newStop(t, at(1, 0), route.Delivery, route.WithPickup(p2.ID()))
	return []route.Stop{p1, d1, p2, d2}
}

func newCourier(t *testing.T, name string, speedKmh float64, loc kernel.Coordinate) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name, speedKmh, loc, clock(7, 0))
	require.NoError(t, err)
	return c
}
