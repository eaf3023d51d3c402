package queries

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/guard"
)

var ErrApplySequenceQueryIsNotConstructed = errors.New(
	"ApplySequenceQuery must be created via NewApplySequenceQuery constructor",
)

// ApplySequenceQuery re-validates an ordering chosen by the caller, for
// example after a dispatcher reordered stops by hand.
type ApplySequenceQuery struct {
	sequence  route.Sequence
	start     kernel.Coordinate
	startTime time.Time

	guard guard.ConstructorGuard
}

func NewApplySequenceQuery(sequence route.Sequence, start kernel.Coordinate, startTime time.Time) (ApplySequenceQuery, error) {
	if err := errors.Join(validateStart(start), validateStartTime(startTime)); err != nil {
		return ApplySequenceQuery{}, err
	}

	return ApplySequenceQuery{
		sequence:  sequence,
		start:     start,
		startTime: startTime,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ApplySequenceQuery) Validate() error {
	return q.guard.Validate(ErrApplySequenceQueryIsNotConstructed)
}

func (q ApplySequenceQuery) Sequence() route.Sequence { return q.sequence }

func (q ApplySequenceQuery) Start() kernel.Coordinate { return q.start }

func (q ApplySequenceQuery) StartTime() time.Time { return q.startTime }
