package services

import (
	"errors"
	"fmt"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
)

// distanceEpsilonKm is the smallest distance gain accepted as an improvement.
const distanceEpsilonKm = 1e-9

// timeCheckInterval is how many move evaluations pass between wall-clock checks.
const timeCheckInterval = 64

var ErrSequencerIsNotConstructed = errors.New("Sequencer must be created via NewSequencer")

// Budget bounds the improvement phase. A zero field disables that bound.
type Budget struct {
	// MaxIterations caps the number of candidate moves evaluated.
	MaxIterations int
	// MaxStallIterations stops the search after that many consecutive moves without gain.
	MaxStallIterations int
	// TimeBudget caps the wall-clock time spent improving.
	TimeBudget time.Duration
}

// DefaultBudget keeps a sequencing call in the low milliseconds for a few dozen stops.
var DefaultBudget = Budget{
	MaxIterations:      20000,
	MaxStallIterations: 5000,
	TimeBudget:         250 * time.Millisecond,
}

func (b Budget) Validate() error {
	var iterErr, stallErr, timeErr error
	if b.MaxIterations < 0 {
		iterErr = errs.NewValueIsInvalidErrorWithCause("maxIterations", fmt.Errorf("must not be negative, got %d", b.MaxIterations))
	}
	if b.MaxStallIterations < 0 {
		stallErr = errs.NewValueIsInvalidErrorWithCause("maxStallIterations",
			fmt.Errorf("must not be negative, got %d", b.MaxStallIterations))
	}
	if b.TimeBudget < 0 {
		timeErr = errs.NewValueIsInvalidErrorWithCause("timeBudget", fmt.Errorf("must not be negative, got %s", b.TimeBudget))
	}
	return errors.Join(iterErr, stallErr, timeErr)
}

// Sequencer orders the stops of one courier.
//
// Construction is nearest neighbour over the stops whose pickup is already
// placed, so precedence holds by construction. When that seed misses a time
// window a deadline-first seed is built too and the better one is kept.
// Improvement alternates 2-opt segment reversal and pairwise swap; a move is
// kept only when precedence still holds, total distance drops and the
// feasibility rank does not get worse.
type Sequencer struct {
	checker *FeasibilityChecker
	budget  Budget
	now     func() time.Time
}

func NewSequencer(checker *FeasibilityChecker, budget Budget) (*Sequencer, error) {
	if err := checker.validate(); err != nil {
		return nil, err
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	return &Sequencer{checker: checker, budget: budget, now: time.Now}, nil
}

func (s *Sequencer) Budget() Budget { return s.budget }

// Sequence returns the best ordering of stops it finds within the budget.
// Zero stops yield an empty feasible plan. Invalid input is the only error.
func (s *Sequencer) Sequence(stops []route.Stop, start kernel.Coordinate, startTime time.Time) (route.Plan, error) {
	if s == nil || s.checker == nil {
		return route.Plan{}, ErrSequencerIsNotConstructed
	}
	p, err := newProblem(stops, start, startTime)
	if err != nil {
		return route.Plan{}, err
	}
	if p.size() == 0 {
		return route.Plan{Sequence: route.NewSequence(), Metrics: route.Metrics{Legs: []route.Leg{}}, Feasible: true}, nil
	}
	p.precompute()

	best, err := s.construct(p)
	if err != nil {
		return route.Plan{}, err
	}
	best, iterations, exceeded := s.improve(p, best)

	final := s.checker.evaluate(p, best.order, true)
	return s.plan(p, final, iterations, exceeded), nil
}

// ApplySequence re-validates a caller-supplied ordering. The plan keeps the
// caller's order; Feasible tells whether it may be accepted.
func (s *Sequencer) ApplySequence(seq route.Sequence, start kernel.Coordinate, startTime time.Time) (route.Plan, error) {
	if s == nil || s.checker == nil {
		return route.Plan{}, ErrSequencerIsNotConstructed
	}
	report, err := s.checker.Check(seq, start, startTime)
	if err != nil {
		return route.Plan{}, err
	}
	return route.Plan{
		Sequence:  seq,
		Metrics:   report.Metrics,
		Feasible:  report.Feasible,
		Violation: report.Violation,
	}, nil
}

func (s *Sequencer) IsValidSequence(seq route.Sequence, start kernel.Coordinate, startTime time.Time) bool {
	return s != nil && s.checker.IsValidSequence(seq, start, startTime)
}

func (s *Sequencer) CanCompleteWithinTimeWindows(seq route.Sequence, start kernel.Coordinate, startTime time.Time) (bool, error) {
	if s == nil || s.checker == nil {
		return false, ErrSequencerIsNotConstructed
	}
	return s.checker.CanCompleteWithinTimeWindows(seq, start, startTime)
}

// EstimateDistance is the total leg distance of seq from start, in kilometres.
func (s *Sequencer) EstimateDistance(seq route.Sequence, start kernel.Coordinate) (float64, error) {
	if s == nil || s.checker == nil {
		return 0, ErrSequencerIsNotConstructed
	}
	return s.checker.Distance(seq, start)
}

// EstimateTravelTime is the time from startTime until service at the last stop
// ends, waits and service durations included.
func (s *Sequencer) EstimateTravelTime(seq route.Sequence, start kernel.Coordinate, startTime time.Time) (time.Duration, error) {
	if s == nil || s.checker == nil {
		return 0, ErrSequencerIsNotConstructed
	}
	metrics, err := s.checker.Walk(seq, start, startTime)
	if err != nil {
		return 0, err
	}
	return metrics.TotalDuration, nil
}

func (s *Sequencer) plan(p *problem, e evaluation, iterations int, exceeded bool) route.Plan {
	ordered := make([]route.Stop, len(e.order))
	for i, idx := range e.order {
		ordered[i] = p.stops[idx]
	}
	return route.Plan{
		Sequence:       route.NewSequence(ordered...),
		Metrics:        e.metrics,
		Feasible:       e.feasible(),
		Violation:      e.violation,
		BudgetExceeded: exceeded,
		Iterations:     iterations,
	}
}

func (s *Sequencer) construct(p *problem) (evaluation, error) {
	nnOrder, err := buildOrder(p, nearestFirst(p))
	if err != nil {
		return evaluation{}, err
	}
	best := s.checker.evaluate(p, nnOrder, false)
	if best.feasible() {
		return best, nil
	}

	dlOrder, err := buildOrder(p, deadlineFirst(p))
	if err != nil {
		return evaluation{}, err
	}
	alt := s.checker.evaluate(p, dlOrder, false)
	if alt.strictlyBetterRank(best) ||
		(alt.betterOrEqualRank(best) && alt.metrics.TotalDistanceKm < best.metrics.TotalDistanceKm-distanceEpsilonKm) {
		return alt, nil
	}
	return best, nil
}

// lessFunc reports whether candidate a should be placed before b when the
// previously placed stop is prev.
type lessFunc func(prev, a, b int) bool

// buildOrder greedily appends the preferred eligible stop. A stop is eligible
// once its pickup, if any, is placed.
func buildOrder(p *problem, less lessFunc) ([]int, error) {
	n := p.size()
	placed := make([]bool, n)
	order := make([]int, 0, n)
	prev := fromStart

	for len(order) < n {
		best := -1
		for cand := range n {
			if placed[cand] {
				continue
			}
			if pk := p.pickupOf[cand]; pk >= 0 && !placed[pk] {
				continue
			}
			if best < 0 || less(prev, cand, best) {
				best = cand
			}
		}
		if best < 0 {
			return nil, errNoEligibleStop
		}
		placed[best] = true
		order = append(order, best)
		prev = best
	}
	return order, nil
}

// nearestFirst prefers the closer stop, then the earlier window start; stops
// without a window come after windowed ones. Input order settles the rest
// because candidates are scanned in input order.
func nearestFirst(p *problem) lessFunc {
	return func(prev, a, b int) bool {
		da, db := p.distance(prev, a), p.distance(prev, b)
		if da != db {
			return da < db
		}
		return windowBefore(p.stops[a], p.stops[b], kernel.TimeWindow.Earliest)
	}
}

// deadlineFirst prefers the earlier window end, then the closer stop.
func deadlineFirst(p *problem) lessFunc {
	return func(prev, a, b int) bool {
		wa, okA := p.stops[a].TimeWindow()
		wb, okB := p.stops[b].TimeWindow()
		switch {
		case okA && okB && !wa.Latest().Equal(wb.Latest()):
			return wa.Latest().Before(wb.Latest())
		case okA != okB:
			return okA
		}
		return p.distance(prev, a) < p.distance(prev, b)
	}
}

func windowBefore(a, b route.Stop, bound func(kernel.TimeWindow) time.Time) bool {
	wa, okA := a.TimeWindow()
	wb, okB := b.TimeWindow()
	switch {
	case okA && okB:
		return bound(wa).Before(bound(wb))
	case okA != okB:
		return okA
	default:
		return false
	}
}

// searchState tracks the budget during improvement.
type searchState struct {
	budget     Budget
	startedAt  time.Time
	now        func() time.Time
	iterations int
	stall      int
	exceeded   bool
	stalled    bool
}

// spent reports whether another move may be evaluated, recording why not.
func (st *searchState) spent() bool {
	if st.budget.MaxIterations > 0 && st.iterations >= st.budget.MaxIterations {
		st.exceeded = true
		return true
	}
	if st.budget.MaxStallIterations > 0 && st.stall >= st.budget.MaxStallIterations {
		st.stalled = true
		return true
	}
	if st.budget.TimeBudget > 0 && st.iterations%timeCheckInterval == 0 &&
		st.now().Sub(st.startedAt) >= st.budget.TimeBudget {
		st.exceeded = true
		return true
	}
	return false
}

// move builds a candidate order from the current one.
type move func(order []int, i, j int) []int

func reverseSegment(order []int, i, j int) []int {
	out := make([]int, len(order))
	copy(out, order)
	for l, r := i, j; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

func swapPair(order []int, i, j int) []int {
	out := make([]int, len(order))
	copy(out, order)
	out[i], out[j] = out[j], out[i]
	return out
}

// improve runs first-improvement local search until a full round of both
// neighbourhoods finds nothing or the budget runs out. It reports the number
// of evaluated moves and whether the iteration or time budget cut it short.
func (s *Sequencer) improve(p *problem, current evaluation) (evaluation, int, bool) {
	n := p.size()
	if n < 2 {
		return current, 0, false
	}

	st := &searchState{budget: s.budget, startedAt: s.now(), now: s.now}
	neighbourhoods := []move{reverseSegment, swapPair}

	for {
		improvedInRound := false
		for _, mv := range neighbourhoods {
			next, improved, stop := s.scan(p, current, mv, st)
			current = next
			improvedInRound = improvedInRound || improved
			if stop {
				return current, st.iterations, st.exceeded
			}
		}
		if !improvedInRound {
			return current, st.iterations, false
		}
	}
}

// scan tries every (i, j) pair of one neighbourhood once.
func (s *Sequencer) scan(p *problem, current evaluation, mv move, st *searchState) (evaluation, bool, bool) {
	n := p.size()
	improved := false
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if st.spent() {
				return current, improved, true
			}
			st.iterations++

			cand := mv(current.order, i, j)
			if p.precedenceViolation(cand) >= 0 {
				st.stall++
				continue
			}
			next := s.checker.evaluate(p, cand, false)
			if next.metrics.TotalDistanceKm < current.metrics.TotalDistanceKm-distanceEpsilonKm &&
				next.betterOrEqualRank(current) {
				current = next
				improved = true
				st.stall = 0
				continue
			}
			st.stall++
		}
	}
	return current, improved, false
}
