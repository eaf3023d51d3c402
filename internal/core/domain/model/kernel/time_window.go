package kernel

import (
	"fmt"
	"time"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow")

// TimeWindow is the closed interval [earliest, latest] in which service at a stop must begin.
type TimeWindow struct {
	earliest time.Time
	latest   time.Time
	guard    guard.ConstructorGuard
}

func NewTimeWindow(earliest, latest time.Time) (TimeWindow, error) {
	if earliest.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("earliest")
	}
	if latest.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("latest")
	}
	if latest.Before(earliest) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("latest %s is before earliest %s", latest.Format(time.RFC3339), earliest.Format(time.RFC3339)))
	}

	return TimeWindow{
		earliest: earliest,
		latest:   latest,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (w TimeWindow) Earliest() time.Time { return w.earliest }

func (w TimeWindow) Latest() time.Time { return w.latest }

// Contains reports whether t lies inside the window, bounds included.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.earliest) && !t.After(w.latest)
}

// Lateness is how far t lies past latest; zero when t is not late.
func (w TimeWindow) Lateness(t time.Time) time.Duration {
	if !t.After(w.latest) {
		return 0
	}
	return t.Sub(w.latest)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.earliest.Format(time.RFC3339), w.latest.Format(time.RFC3339))
}

func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}
